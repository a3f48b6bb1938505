package telemetryrp

import (
	"context"
	"fmt"
	"time"

	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
)

type gTelemetry struct {
	TID          int64  `gorm:"primaryKey;autoIncrement;column:tid"`
	VehicleID    string `gorm:"index"`
	Timestamp    time.Time
	Lat          float64
	Lng          float64
	Speed        int
	Fuel         int
	EngineHealth int
	BrakeHealth  int
	TireHealth   int
}

func (gt *gTelemetry) TableName() string {
	return "telemetry"
}

func (gt *gTelemetry) Model() *model.Telemetry {
	return &model.Telemetry{
		ID:           gt.TID,
		VehicleID:    gt.VehicleID,
		Timestamp:    gt.Timestamp,
		Lat:          gt.Lat,
		Lng:          gt.Lng,
		Speed:        gt.Speed,
		Fuel:         gt.Fuel,
		EngineHealth: gt.EngineHealth,
		BrakeHealth:  gt.BrakeHealth,
		TireHealth:   gt.TireHealth,
	}
}

func toModels(gts []gTelemetry) []model.Telemetry {
	ts := make([]model.Telemetry, 0, len(gts))
	for i := range gts {
		ts = append(ts, *gts[i].Model())
	}
	return ts
}

// Migrate creates or updates the telemetry table.
func Migrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return q.GORM(ctx).AutoMigrate(&gTelemetry{})
}

func Insert[Q postgres.Queryer](ctx context.Context, q Q, t *model.Telemetry) error {
	gdb := q.GORM(ctx)
	gt := &gTelemetry{
		VehicleID:    t.VehicleID,
		Timestamp:    t.Timestamp,
		Lat:          t.Lat,
		Lng:          t.Lng,
		Speed:        t.Speed,
		Fuel:         t.Fuel,
		EngineHealth: t.EngineHealth,
		BrakeHealth:  t.BrakeHealth,
		TireHealth:   t.TireHealth,
	}
	if err := gdb.Create(gt).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	t.ID = gt.TID
	return nil
}

func ListByVehicle[Q postgres.Queryer](ctx context.Context, q Q, vid string) ([]model.Telemetry, error) {
	gdb := q.GORM(ctx)
	var gts []gTelemetry
	err := gdb.Where(
		"vehicle_id=?", vid,
	).Order("tid desc").Find(&gts).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return toModels(gts), nil
}

// LatestPerVehicle selects the row with the largest sequence number of
// each reporting vehicle using the PostgreSQL DISTINCT ON clause.
func LatestPerVehicle[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Telemetry, error) {
	gdb := q.GORM(ctx)
	var gts []gTelemetry
	err := gdb.Raw(
		"SELECT DISTINCT ON (vehicle_id) * FROM telemetry" +
			" ORDER BY vehicle_id, tid DESC",
	).Scan(&gts).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return toModels(gts), nil
}
