package metricsrp

import (
	"context"

	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/neurofleetx/fleetweb/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

// queryer adapts the package-level generic query functions to the
// repo.MetricsQueryer interface for both connections and transactions.
type queryer[Q postgres.Queryer] struct {
	q Q
}

func (metrics *Repo) Conn(c repo.Conn) repo.MetricsConnQueryer {
	cc := c.(*postgres.Conn)
	return queryer[*postgres.Conn]{q: cc}
}

func (metrics *Repo) Tx(tx repo.Tx) repo.MetricsTxQueryer {
	tt := tx.(*postgres.Tx)
	return queryer[*postgres.Tx]{q: tt}
}

func (qq queryer[Q]) LatestAIMetrics(ctx context.Context) (*model.AIMetrics, error) {
	return LatestAIMetrics(ctx, qq.q)
}

func (qq queryer[Q]) LatestSystemHealth(ctx context.Context) (*model.SystemHealth, error) {
	return LatestSystemHealth(ctx, qq.q)
}

func (qq queryer[Q]) RecordAIMetrics(ctx context.Context, m *model.AIMetrics) error {
	return RecordAIMetrics(ctx, qq.q, m)
}

func (qq queryer[Q]) RecordSystemHealth(ctx context.Context, h *model.SystemHealth) error {
	return RecordSystemHealth(ctx, qq.q, h)
}
