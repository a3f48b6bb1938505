package repo

import (
	"context"

	"github.com/neurofleetx/fleetweb/pkg/core/model"
)

type TelemetryConnQueryer interface {
	TelemetryQueryer
}

type TelemetryTxQueryer interface {
	TelemetryQueryer
}

// TelemetryQueryer exposes the append-only telemetry store.
type TelemetryQueryer interface {
	Insert(ctx context.Context, t *model.Telemetry) error

	// ListByVehicle returns the samples of one vehicle, newest first.
	ListByVehicle(ctx context.Context, vid string) ([]model.Telemetry, error)

	// LatestPerVehicle returns the most recent sample of every vehicle
	// which has reported at least once.
	LatestPerVehicle(ctx context.Context) ([]model.Telemetry, error)
}

type Telemetry interface {
	Conn(Conn) TelemetryConnQueryer
	Tx(Tx) TelemetryTxQueryer
}
