package bookingsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres"
	"github.com/neurofleetx/fleetweb/pkg/core/cerr"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
)

type gBooking struct {
	BID           string `gorm:"primaryKey;column:bid"`
	CustomerID    string `gorm:"index"`
	CustomerName  string
	VehicleID     *string        `gorm:"index"`
	DriverID      *string        `gorm:"index"`
	Status        string         `gorm:"index"`
	Pickup        model.Location `gorm:"embedded;embeddedPrefix:pickup_"`
	Destination   model.Location `gorm:"embedded;embeddedPrefix:destination_"`
	ScheduledTime time.Time
	CompletedTime *time.Time
	Fare          *float64
	Rating        *int
}

func (gb *gBooking) TableName() string {
	return "bookings"
}

func (gb *gBooking) Model() *model.Booking {
	return &model.Booking{
		ID:            gb.BID,
		CustomerID:    gb.CustomerID,
		CustomerName:  gb.CustomerName,
		VehicleID:     gb.VehicleID,
		DriverID:      gb.DriverID,
		Status:        model.BookingStatus(gb.Status),
		Pickup:        gb.Pickup,
		Destination:   gb.Destination,
		ScheduledTime: gb.ScheduledTime,
		CompletedTime: gb.CompletedTime,
		Fare:          gb.Fare,
		Rating:        gb.Rating,
	}
}

func toRow(b *model.Booking) *gBooking {
	return &gBooking{
		BID:           b.ID,
		CustomerID:    b.CustomerID,
		CustomerName:  b.CustomerName,
		VehicleID:     b.VehicleID,
		DriverID:      b.DriverID,
		Status:        string(b.Status),
		Pickup:        b.Pickup,
		Destination:   b.Destination,
		ScheduledTime: b.ScheduledTime,
		CompletedTime: b.CompletedTime,
		Fare:          b.Fare,
		Rating:        b.Rating,
	}
}

func toModels(gbs []gBooking) []model.Booking {
	bs := make([]model.Booking, 0, len(gbs))
	for i := range gbs {
		bs = append(bs, *gbs[i].Model())
	}
	return bs
}

// activeStatuses are the booking statuses which count as ongoing work,
// matching model.BookingStatus.IsActive.
var activeStatuses = []string{
	string(model.BookingPending),
	string(model.BookingAssigned),
	string(model.BookingInProgress),
}

// Migrate creates or updates the bookings table.
func Migrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return q.GORM(ctx).AutoMigrate(&gBooking{})
}

func GetByID[Q postgres.Queryer](ctx context.Context, q Q, bid string) (*model.Booking, error) {
	gdb := q.GORM(ctx)
	var gbs []gBooking
	if err := gdb.Where("bid=?", bid).Find(&gbs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gbs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gbs[0].Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Booking, error) {
	gdb := q.GORM(ctx)
	var gbs []gBooking
	if err := gdb.Order("scheduled_time desc").Find(&gbs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return toModels(gbs), nil
}

func ListByCustomer[Q postgres.Queryer](ctx context.Context, q Q, customerID string) ([]model.Booking, error) {
	gdb := q.GORM(ctx)
	var gbs []gBooking
	err := gdb.Where(
		"customer_id=?", customerID,
	).Order("scheduled_time desc").Find(&gbs).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return toModels(gbs), nil
}

func ListByDriver[Q postgres.Queryer](ctx context.Context, q Q, driverID string) ([]model.Booking, error) {
	gdb := q.GORM(ctx)
	var gbs []gBooking
	err := gdb.Where(
		"driver_id=?", driverID,
	).Order("scheduled_time desc").Find(&gbs).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return toModels(gbs), nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, b *model.Booking) error {
	gdb := q.GORM(ctx)
	if err := gdb.Create(toRow(b)).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

// mutableColumns enumerates the non-key columns which Update overwrites
// as a whole row. Nil pointer fields must overwrite too, hence, the
// explicit column selection.
var mutableColumns = []string{
	"customer_id", "customer_name", "vehicle_id", "driver_id", "status",
	"pickup_lat", "pickup_lng", "pickup_address",
	"destination_lat", "destination_lng", "destination_address",
	"scheduled_time", "completed_time", "fare", "rating",
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, b *model.Booking) error {
	gdb := q.GORM(ctx)
	tt := gdb.Model(&gBooking{}).Select(mutableColumns).Where(
		"bid=?", b.ID,
	).Updates(toRow(b))
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

func HasActiveForVehicle[Q postgres.Queryer](ctx context.Context, q Q, vid string) (bool, error) {
	gdb := q.GORM(ctx)
	var n int64
	err := gdb.Model(&gBooking{}).Where(
		"vehicle_id=? AND status IN ?", vid, activeStatuses,
	).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("count: %w", err)
	}
	return n > 0, nil
}

func CountActive[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	gdb := q.GORM(ctx)
	var n int64
	err := gdb.Model(&gBooking{}).Where(
		"status IN ?", activeStatuses,
	).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func SumRevenueSince[Q postgres.Queryer](ctx context.Context, q Q, since time.Time) (float64, error) {
	gdb := q.GORM(ctx)
	var sum float64
	err := gdb.Model(&gBooking{}).Select(
		"COALESCE(SUM(fare), 0)",
	).Where(
		"status=? AND completed_time >= ?",
		string(model.BookingCompleted), since,
	).Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	return sum, nil
}
