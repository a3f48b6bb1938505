package repo

import (
	"context"

	"github.com/neurofleetx/fleetweb/pkg/core/model"
)

type MaintenanceConnQueryer interface {
	MaintenanceQueryer
}

type MaintenanceTxQueryer interface {
	MaintenanceQueryer
}

// MaintenanceQueryer exposes the maintenance records store.
type MaintenanceQueryer interface {
	List(ctx context.Context) ([]model.Maintenance, error)
	ListByVehicle(ctx context.Context, vid string) ([]model.Maintenance, error)
	Create(ctx context.Context, m *model.Maintenance) error
}

type MaintenanceRecords interface {
	Conn(Conn) MaintenanceConnQueryer
	Tx(Tx) MaintenanceTxQueryer
}
