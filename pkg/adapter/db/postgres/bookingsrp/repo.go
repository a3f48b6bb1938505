package bookingsrp

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
// repo.BookingsQueryer interface for both connections and transactions.
type queryer[Q postgres.Queryer] struct {
	q Q
}

func (bookings *Repo) Conn(c repo.Conn) repo.BookingsConnQueryer {
	cc := c.(*postgres.Conn)
	return queryer[*postgres.Conn]{q: cc}
}

func (bookings *Repo) Tx(tx repo.Tx) repo.BookingsTxQueryer {
	tt := tx.(*postgres.Tx)
	return queryer[*postgres.Tx]{q: tt}
}

func (qq queryer[Q]) GetByID(ctx context.Context, bid string) (*model.Booking, error) {
	return GetByID(ctx, qq.q, bid)
}

func (qq queryer[Q]) List(ctx context.Context) ([]model.Booking, error) {
	return List(ctx, qq.q)
}

func (qq queryer[Q]) ListByCustomer(ctx context.Context, customerID string) ([]model.Booking, error) {
	return ListByCustomer(ctx, qq.q, customerID)
}

func (qq queryer[Q]) ListByDriver(ctx context.Context, driverID string) ([]model.Booking, error) {
	return ListByDriver(ctx, qq.q, driverID)
}

func (qq queryer[Q]) Create(ctx context.Context, b *model.Booking) error {
	return Create(ctx, qq.q, b)
}

func (qq queryer[Q]) Update(ctx context.Context, b *model.Booking) error {
	return Update(ctx, qq.q, b)
}

func (qq queryer[Q]) HasActiveForVehicle(ctx context.Context, vid string) (bool, error) {
	return HasActiveForVehicle(ctx, qq.q, vid)
}

func (qq queryer[Q]) CountActive(ctx context.Context) (int64, error) {
	return CountActive(ctx, qq.q)
}

func (qq queryer[Q]) SumRevenueSince(ctx context.Context, since time.Time) (float64, error) {
	return SumRevenueSince(ctx, qq.q, since)
}
