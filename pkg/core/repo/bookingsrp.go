package repo

import (
	"context"
	"time"

	"github.com/neurofleetx/fleetweb/pkg/core/model"
)

type BookingsConnQueryer interface {
	BookingsQueryer
}

type BookingsTxQueryer interface {
	BookingsQueryer
}

// BookingsQueryer exposes the bookings store operations.
type BookingsQueryer interface {
	GetByID(ctx context.Context, bid string) (*model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]model.Booking, error)
	ListByDriver(ctx context.Context, driverID string) ([]model.Booking, error)
	Create(ctx context.Context, b *model.Booking) error
	Update(ctx context.Context, b *model.Booking) error

	// HasActiveForVehicle reports whether the vid vehicle is currently
	// referenced by any booking in a non-terminal status.
	HasActiveForVehicle(ctx context.Context, vid string) (bool, error)

	// CountActive counts the bookings in the pending, assigned, or
	// in_progress statuses.
	CountActive(ctx context.Context) (int64, error)

	// SumRevenueSince sums the fares of the bookings which were
	// completed at or after the since instant, returning zero when
	// there is none.
	SumRevenueSince(ctx context.Context, since time.Time) (float64, error)
}

type Bookings interface {
	Conn(Conn) BookingsConnQueryer
	Tx(Tx) BookingsTxQueryer
}
