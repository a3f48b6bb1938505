package repo

import (
	"context"
	"time"

	"github.com/neurofleetx/fleetweb/pkg/core/model"
)

type VehiclesConnQueryer interface {
	VehiclesQueryer
}

type VehiclesTxQueryer interface {
	VehiclesQueryer
}

// VehiclesQueryer exposes the vehicles store operations. The averages
// return nil when the fleet is empty, so callers can distinguish a
// missing value from a zero one.
type VehiclesQueryer interface {
	GetByID(ctx context.Context, vid string) (*model.Vehicle, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	ListByStatus(ctx context.Context, s model.VehicleStatus) ([]model.Vehicle, error)
	ListByDriver(ctx context.Context, driverID string) ([]model.Vehicle, error)
	Create(ctx context.Context, v *model.Vehicle) error
	Update(ctx context.Context, v *model.Vehicle) error
	Delete(ctx context.Context, vid string) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, s model.VehicleStatus) (int64, error)
	AverageHealth(ctx context.Context) (*float64, error)
	AverageFuel(ctx context.Context) (*float64, error)

	// Assign marks the vid vehicle as active and behind the wheel of
	// the driverID driver, returning the updated vehicle row.
	Assign(ctx context.Context, vid, driverID string, now time.Time) (*model.Vehicle, error)

	// Release puts the vid vehicle back into the available status and
	// clears its driver, returning the updated vehicle row.
	Release(ctx context.Context, vid string, now time.Time) (*model.Vehicle, error)
}

type Vehicles interface {
	Conn(Conn) VehiclesConnQueryer
	Tx(Tx) VehiclesTxQueryer
}
