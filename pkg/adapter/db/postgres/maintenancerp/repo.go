package maintenancerp

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
// repo.MaintenanceQueryer interface for both connections and
// transactions.
type queryer[Q postgres.Queryer] struct {
	q Q
}

func (records *Repo) Conn(c repo.Conn) repo.MaintenanceConnQueryer {
	cc := c.(*postgres.Conn)
	return queryer[*postgres.Conn]{q: cc}
}

func (records *Repo) Tx(tx repo.Tx) repo.MaintenanceTxQueryer {
	tt := tx.(*postgres.Tx)
	return queryer[*postgres.Tx]{q: tt}
}

func (qq queryer[Q]) List(ctx context.Context) ([]model.Maintenance, error) {
	return List(ctx, qq.q)
}

func (qq queryer[Q]) ListByVehicle(ctx context.Context, vid string) ([]model.Maintenance, error) {
	return ListByVehicle(ctx, qq.q, vid)
}

func (qq queryer[Q]) Create(ctx context.Context, m *model.Maintenance) error {
	return Create(ctx, qq.q, m)
}
