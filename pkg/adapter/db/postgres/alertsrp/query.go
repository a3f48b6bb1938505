package alertsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
)

type gAlert struct {
	AID              string `gorm:"primaryKey;column:aid"`
	Type             string
	Severity         string
	Location         model.Location `gorm:"embedded;embeddedPrefix:location_"`
	Destination      model.Location `gorm:"embedded;embeddedPrefix:destination_"`
	Status           string         `gorm:"index"`
	Timestamp        time.Time
	EstimatedArrival *int
}

func (ga *gAlert) TableName() string {
	return "emergency_alerts"
}

func (ga *gAlert) Model() *model.EmergencyAlert {
	return &model.EmergencyAlert{
		ID:               ga.AID,
		Type:             model.EmergencyType(ga.Type),
		Severity:         model.AlertSeverity(ga.Severity),
		Location:         ga.Location,
		Destination:      ga.Destination,
		Status:           model.AlertStatus(ga.Status),
		Timestamp:        ga.Timestamp,
		EstimatedArrival: ga.EstimatedArrival,
	}
}

func toModels(gas []gAlert) []model.EmergencyAlert {
	as := make([]model.EmergencyAlert, 0, len(gas))
	for i := range gas {
		as = append(as, *gas[i].Model())
	}
	return as
}

// Migrate creates or updates the emergency alerts table.
func Migrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return q.GORM(ctx).AutoMigrate(&gAlert{})
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.EmergencyAlert, error) {
	gdb := q.GORM(ctx)
	var gas []gAlert
	if err := gdb.Order("timestamp desc").Find(&gas).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return toModels(gas), nil
}

func ListByStatus[Q postgres.Queryer](ctx context.Context, q Q, s model.AlertStatus) ([]model.EmergencyAlert, error) {
	gdb := q.GORM(ctx)
	var gas []gAlert
	err := gdb.Where(
		"status=?", string(s),
	).Order("timestamp desc").Find(&gas).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return toModels(gas), nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, a *model.EmergencyAlert) error {
	gdb := q.GORM(ctx)
	ga := &gAlert{
		AID:              a.ID,
		Type:             string(a.Type),
		Severity:         string(a.Severity),
		Location:         a.Location,
		Destination:      a.Destination,
		Status:           string(a.Status),
		Timestamp:        a.Timestamp,
		EstimatedArrival: a.EstimatedArrival,
	}
	if err := gdb.Create(ga).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}
