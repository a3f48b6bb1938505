package telemetryrp

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
// repo.TelemetryQueryer interface for both connections and
// transactions.
type queryer[Q postgres.Queryer] struct {
	q Q
}

func (telemetry *Repo) Conn(c repo.Conn) repo.TelemetryConnQueryer {
	cc := c.(*postgres.Conn)
	return queryer[*postgres.Conn]{q: cc}
}

func (telemetry *Repo) Tx(tx repo.Tx) repo.TelemetryTxQueryer {
	tt := tx.(*postgres.Tx)
	return queryer[*postgres.Tx]{q: tt}
}

func (qq queryer[Q]) Insert(ctx context.Context, t *model.Telemetry) error {
	return Insert(ctx, qq.q, t)
}

func (qq queryer[Q]) ListByVehicle(ctx context.Context, vid string) ([]model.Telemetry, error) {
	return ListByVehicle(ctx, qq.q, vid)
}

func (qq queryer[Q]) LatestPerVehicle(ctx context.Context) ([]model.Telemetry, error) {
	return LatestPerVehicle(ctx, qq.q)
}
