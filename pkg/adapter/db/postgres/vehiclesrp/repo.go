package vehiclesrp

import (
	"context"
	"time"

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
// repo.VehiclesQueryer interface for both connections and transactions.
type queryer[Q postgres.Queryer] struct {
	q Q
}

func (vehicles *Repo) Conn(c repo.Conn) repo.VehiclesConnQueryer {
	cc := c.(*postgres.Conn)
	return queryer[*postgres.Conn]{q: cc}
}

func (vehicles *Repo) Tx(tx repo.Tx) repo.VehiclesTxQueryer {
	tt := tx.(*postgres.Tx)
	return queryer[*postgres.Tx]{q: tt}
}

func (qq queryer[Q]) GetByID(ctx context.Context, vid string) (*model.Vehicle, error) {
	return GetByID(ctx, qq.q, vid)
}

func (qq queryer[Q]) List(ctx context.Context) ([]model.Vehicle, error) {
	return List(ctx, qq.q)
}

func (qq queryer[Q]) ListByStatus(ctx context.Context, s model.VehicleStatus) ([]model.Vehicle, error) {
	return ListByStatus(ctx, qq.q, s)
}

func (qq queryer[Q]) ListByDriver(ctx context.Context, driverID string) ([]model.Vehicle, error) {
	return ListByDriver(ctx, qq.q, driverID)
}

func (qq queryer[Q]) Create(ctx context.Context, v *model.Vehicle) error {
	return Create(ctx, qq.q, v)
}

func (qq queryer[Q]) Update(ctx context.Context, v *model.Vehicle) error {
	return Update(ctx, qq.q, v)
}

func (qq queryer[Q]) Delete(ctx context.Context, vid string) error {
	return Delete(ctx, qq.q, vid)
}

func (qq queryer[Q]) CountAll(ctx context.Context) (int64, error) {
	return CountAll(ctx, qq.q)
}

func (qq queryer[Q]) CountByStatus(ctx context.Context, s model.VehicleStatus) (int64, error) {
	return CountByStatus(ctx, qq.q, s)
}

func (qq queryer[Q]) AverageHealth(ctx context.Context) (*float64, error) {
	return AverageHealth(ctx, qq.q)
}

func (qq queryer[Q]) AverageFuel(ctx context.Context) (*float64, error) {
	return AverageFuel(ctx, qq.q)
}

func (qq queryer[Q]) Assign(ctx context.Context, vid, driverID string, now time.Time) (*model.Vehicle, error) {
	return Assign(ctx, qq.q, vid, driverID, now)
}

func (qq queryer[Q]) Release(ctx context.Context, vid string, now time.Time) (*model.Vehicle, error) {
	return Release(ctx, qq.q, vid, now)
}
