package maintenancerp

import (
	"context"
	"fmt"
	"time"

	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
)

type gMaintenance struct {
	MID            string `gorm:"primaryKey;column:mid"`
	VehicleID      string `gorm:"index"`
	Type           string
	Description    string
	Status         string
	PredictedIssue *string
	EstimatedCost  *float64
	ScheduledDate  time.Time
	CompletedDate  *time.Time
}

func (gm *gMaintenance) TableName() string {
	return "maintenance_records"
}

func (gm *gMaintenance) Model() *model.Maintenance {
	return &model.Maintenance{
		ID:             gm.MID,
		VehicleID:      gm.VehicleID,
		Type:           model.MaintenanceType(gm.Type),
		Description:    gm.Description,
		Status:         model.MaintenanceStatus(gm.Status),
		PredictedIssue: gm.PredictedIssue,
		EstimatedCost:  gm.EstimatedCost,
		ScheduledDate:  gm.ScheduledDate,
		CompletedDate:  gm.CompletedDate,
	}
}

func toModels(gms []gMaintenance) []model.Maintenance {
	ms := make([]model.Maintenance, 0, len(gms))
	for i := range gms {
		ms = append(ms, *gms[i].Model())
	}
	return ms
}

// Migrate creates or updates the maintenance records table.
func Migrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return q.GORM(ctx).AutoMigrate(&gMaintenance{})
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Maintenance, error) {
	gdb := q.GORM(ctx)
	var gms []gMaintenance
	if err := gdb.Order("scheduled_date").Find(&gms).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return toModels(gms), nil
}

func ListByVehicle[Q postgres.Queryer](ctx context.Context, q Q, vid string) ([]model.Maintenance, error) {
	gdb := q.GORM(ctx)
	var gms []gMaintenance
	err := gdb.Where(
		"vehicle_id=?", vid,
	).Order("scheduled_date").Find(&gms).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return toModels(gms), nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, m *model.Maintenance) error {
	gdb := q.GORM(ctx)
	gm := &gMaintenance{
		MID:            m.ID,
		VehicleID:      m.VehicleID,
		Type:           string(m.Type),
		Description:    m.Description,
		Status:         string(m.Status),
		PredictedIssue: m.PredictedIssue,
		EstimatedCost:  m.EstimatedCost,
		ScheduledDate:  m.ScheduledDate,
		CompletedDate:  m.CompletedDate,
	}
	if err := gdb.Create(gm).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}
