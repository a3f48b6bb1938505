package vehiclesrp

import (
	"context"
	"fmt"
	"time"

	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres"
	"github.com/neurofleetx/fleetweb/pkg/core/cerr"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"gorm.io/gorm/clause"
)

type gVehicle struct {
	VID          string `gorm:"primaryKey;column:vid"`
	CarModel     string `gorm:"column:car_model"`
	Type         string
	Status       string         `gorm:"index"`
	LicensePlate string         `gorm:"uniqueIndex"`
	Location     model.Location `gorm:"embedded;embeddedPrefix:location_"`
	Fuel         int
	Health       int
	Mileage      int
	DriverID     *string `gorm:"index"`
	LastUpdate   time.Time
}

func (gv *gVehicle) TableName() string {
	return "vehicles"
}

func (gv *gVehicle) Model() *model.Vehicle {
	return &model.Vehicle{
		ID:           gv.VID,
		Model:        gv.CarModel,
		Type:         model.VehicleType(gv.Type),
		Status:       model.VehicleStatus(gv.Status),
		LicensePlate: gv.LicensePlate,
		Location:     gv.Location,
		Fuel:         gv.Fuel,
		Health:       gv.Health,
		Mileage:      gv.Mileage,
		DriverID:     gv.DriverID,
		LastUpdate:   gv.LastUpdate,
	}
}

func toRow(v *model.Vehicle) *gVehicle {
	return &gVehicle{
		VID:          v.ID,
		CarModel:     v.Model,
		Type:         string(v.Type),
		Status:       string(v.Status),
		LicensePlate: v.LicensePlate,
		Location:     v.Location,
		Fuel:         v.Fuel,
		Health:       v.Health,
		Mileage:      v.Mileage,
		DriverID:     v.DriverID,
		LastUpdate:   v.LastUpdate,
	}
}

func toModels(gvs []gVehicle) []model.Vehicle {
	vs := make([]model.Vehicle, 0, len(gvs))
	for i := range gvs {
		vs = append(vs, *gvs[i].Model())
	}
	return vs
}

// Migrate creates or updates the vehicles table.
func Migrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return q.GORM(ctx).AutoMigrate(&gVehicle{})
}

func GetByID[Q postgres.Queryer](ctx context.Context, q Q, vid string) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	if err := gdb.Where("vid=?", vid).Find(&gvs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gvs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gvs[0].Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	if err := gdb.Order("vid").Find(&gvs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return toModels(gvs), nil
}

func ListByStatus[Q postgres.Queryer](ctx context.Context, q Q, s model.VehicleStatus) ([]model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	err := gdb.Where("status=?", string(s)).Order("vid").Find(&gvs).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return toModels(gvs), nil
}

func ListByDriver[Q postgres.Queryer](ctx context.Context, q Q, driverID string) ([]model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	err := gdb.Where("driver_id=?", driverID).Order("vid").Find(&gvs).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return toModels(gvs), nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, v *model.Vehicle) error {
	gdb := q.GORM(ctx)
	if err := gdb.Create(toRow(v)).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

// mutableColumns enumerates the non-key columns which Update overwrites
// as a whole row. Zero field values must overwrite too, hence, the
// explicit column selection.
var mutableColumns = []string{
	"car_model", "type", "status", "license_plate",
	"location_lat", "location_lng", "location_address",
	"fuel", "health", "mileage", "driver_id", "last_update",
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, v *model.Vehicle) error {
	gdb := q.GORM(ctx)
	tt := gdb.Model(&gVehicle{}).Select(mutableColumns).Where(
		"vid=?", v.ID,
	).Updates(toRow(v))
	if err := tt.Error; err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if n := tt.RowsAffected; n != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, vid string) error {
	gdb := q.GORM(ctx)
	tt := gdb.Where("vid=?", vid).Delete(&gVehicle{})
	if err := tt.Error; err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if n := tt.RowsAffected; n != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return nil
}

func CountAll[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	gdb := q.GORM(ctx)
	var n int64
	if err := gdb.Model(&gVehicle{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func CountByStatus[Q postgres.Queryer](ctx context.Context, q Q, s model.VehicleStatus) (int64, error) {
	gdb := q.GORM(ctx)
	var n int64
	err := gdb.Model(&gVehicle{}).Where(
		"status=?", string(s),
	).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// AverageHealth computes the fleet-wide health average, returning nil
// for an empty fleet (AVG of no rows is NULL).
func AverageHealth[Q postgres.Queryer](ctx context.Context, q Q) (*float64, error) {
	return average(ctx, q, "health")
}

// AverageFuel computes the fleet-wide fuel level average, returning
// nil for an empty fleet.
func AverageFuel[Q postgres.Queryer](ctx context.Context, q Q) (*float64, error) {
	return average(ctx, q, "fuel")
}

func average[Q postgres.Queryer](ctx context.Context, q Q, column string) (*float64, error) {
	gdb := q.GORM(ctx)
	var avg *float64
	err := gdb.Model(&gVehicle{}).Select(
		"AVG(" + column + ")",
	).Scan(&avg).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return avg, nil
}

// Assign puts the vid vehicle into the active status behind the wheel
// of the driverID driver, returning the updated row.
func Assign[Q postgres.Queryer](ctx context.Context, q Q, vid, driverID string, now time.Time) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	tt := gdb.Model(&gvs).Clauses(clause.Returning{}).Select(
		"status", "driver_id", "last_update",
	).Where(
		"vid=?", vid,
	).Updates(gVehicle{
		Status:     string(model.VehicleActive),
		DriverID:   &driverID,
		LastUpdate: now,
	})
	if err := tt.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gvs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gvs[0].Model(), nil
}

// Release puts the vid vehicle back into the available status and
// clears its driver, returning the updated row.
func Release[Q postgres.Queryer](ctx context.Context, q Q, vid string, now time.Time) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	tt := gdb.Model(&gvs).Clauses(clause.Returning{}).Select(
		"status", "driver_id", "last_update",
	).Where(
		"vid=?", vid,
	).Updates(map[string]any{
		"status":      string(model.VehicleAvailable),
		"driver_id":   nil,
		"last_update": now,
	})
	if err := tt.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gvs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gvs[0].Model(), nil
}
