package alertsrp

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
// repo.AlertsQueryer interface for both connections and transactions.
type queryer[Q postgres.Queryer] struct {
	q Q
}

func (alerts *Repo) Conn(c repo.Conn) repo.AlertsConnQueryer {
	cc := c.(*postgres.Conn)
	return queryer[*postgres.Conn]{q: cc}
}

func (alerts *Repo) Tx(tx repo.Tx) repo.AlertsTxQueryer {
	tt := tx.(*postgres.Tx)
	return queryer[*postgres.Tx]{q: tt}
}

func (qq queryer[Q]) List(ctx context.Context) ([]model.EmergencyAlert, error) {
	return List(ctx, qq.q)
}

func (qq queryer[Q]) ListByStatus(ctx context.Context, s model.AlertStatus) ([]model.EmergencyAlert, error) {
	return ListByStatus(ctx, qq.q, s)
}

func (qq queryer[Q]) Create(ctx context.Context, a *model.EmergencyAlert) error {
	return Create(ctx, qq.q, a)
}
