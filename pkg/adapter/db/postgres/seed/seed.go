// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package seed creates the database schema and loads the demo fleet
// dataset. Seeding is idempotent: a non-empty users table marks an
// already initialized database and the dataset is left untouched.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/alertsrp"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/bookingsrp"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/maintenancerp"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/metricsrp"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/telemetryrp"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/usersrp"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/neurofleetx/fleetweb/pkg/core/repo"
	"github.com/neurofleetx/fleetweb/pkg/core/scram"
)

// hashIters follows the RFC 7677 recommendation for SCRAM-SHA-256.
const hashIters = 15000

// Migrate creates or updates all tables of the fleet schema.
func Migrate(ctx context.Context, c repo.Conn) error {
	cc := c.(*postgres.Conn)
	migrations := []struct {
		name string
		run  func(context.Context, *postgres.Conn) error
	}{
		{"users", usersrp.Migrate[*postgres.Conn]},
		{"vehicles", vehiclesrp.Migrate[*postgres.Conn]},
		{"bookings", bookingsrp.Migrate[*postgres.Conn]},
		{"telemetry", telemetryrp.Migrate[*postgres.Conn]},
		{"maintenance", maintenancerp.Migrate[*postgres.Conn]},
		{"alerts", alertsrp.Migrate[*postgres.Conn]},
		{"metrics", metricsrp.Migrate[*postgres.Conn]},
	}
	for _, m := range migrations {
		if err := m.run(ctx, cc); err != nil {
			return fmt.Errorf("migrating %s: %w", m.name, err)
		}
	}
	return nil
}

// Seed loads the demo dataset in one transaction, hashing the demo
// account passwords with the h hasher. An already seeded database is
// detected by its users count and left unchanged.
func Seed(ctx context.Context, c repo.Conn, h scram.Hasher) error {
	return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
		tt := tx.(*postgres.Tx)
		n, err := usersrp.Count(ctx, tt)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		now := time.Now()
		if err := seedUsers(ctx, tt, h); err != nil {
			return err
		}
		if err := seedVehicles(ctx, tt, now); err != nil {
			return err
		}
		if err := seedBookings(ctx, tt, now); err != nil {
			return err
		}
		if err := seedAlerts(ctx, tt, now); err != nil {
			return err
		}
		if err := seedMaintenance(ctx, tt, now); err != nil {
			return err
		}
		return seedMetrics(ctx, tt, now)
	})
}

func seedUsers(ctx context.Context, tt *postgres.Tx, h scram.Hasher) error {
	accounts := []struct {
		username string
		email    string
		pass     string
		role     model.UserRole
	}{
		{"admin", "admin@neurofleetx.com", "admin123", model.RoleAdmin},
		{"driver1", "driver@neurofleetx.com", "driver123", model.RoleDriver},
		{
			"customer1", "customer@neurofleetx.com",
			"customer123", model.RoleCustomer,
		},
		{
			"passenger1", "passenger@neurofleetx.com",
			"passenger123", model.RolePassenger,
		},
	}
	for _, a := range accounts {
		hash, err := h.Hash(a.pass, "", hashIters)
		if err != nil {
			return fmt.Errorf("hashing %s password: %w", a.username, err)
		}
		err = usersrp.Create(ctx, tt, &model.User{
			ID:           uuid.NewString(),
			Username:     a.username,
			Email:        a.email,
			PasswordHash: hash,
			Role:         a.role,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func seedVehicles(ctx context.Context, tt *postgres.Tx, now time.Time) error {
	vehicles := []struct {
		model    string
		vtype    model.VehicleType
		status   model.VehicleStatus
		location model.Location
	}{
		{
			"Toyota Innova", model.VehicleTypeSUV, model.VehicleActive,
			model.Location{
				Lat: 17.4065, Lng: 78.4772,
				Address: "Hitech City, Hyderabad",
			},
		},
		{
			"Maruti Ertiga", model.VehicleTypeVan, model.VehicleAvailable,
			model.Location{
				Lat: 17.3850, Lng: 78.4867,
				Address: "Gachibowli, Hyderabad",
			},
		},
		{
			"Tata Nexon", model.VehicleTypeSedan, model.VehicleActive,
			model.Location{
				Lat: 17.4156, Lng: 78.4347,
				Address: "Banjara Hills, Hyderabad",
			},
		},
		{
			"Mahindra XUV700", model.VehicleTypeSUV, model.VehicleMaintenance,
			model.Location{
				Lat: 17.4399, Lng: 78.4983,
				Address: "Secunderabad Railway Station",
			},
		},
		{
			"Hyundai Creta", model.VehicleTypeSUV, model.VehicleAvailable,
			model.Location{
				Lat: 17.3616, Lng: 78.4747,
				Address: "Charminar, Hyderabad",
			},
		},
	}
	for i, v := range vehicles {
		err := vehiclesrp.Create(ctx, tt, &model.Vehicle{
			ID:           fmt.Sprintf("VH-%03d", i+1),
			Model:        v.model,
			Type:         v.vtype,
			Status:       v.status,
			LicensePlate: fmt.Sprintf("TS09AB%d", 1000+i),
			Location:     v.location,
			Fuel:         70 + rand.Intn(30),
			Health:       85 + rand.Intn(15),
			Mileage:      10000 + rand.Intn(40000),
			LastUpdate:   now,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func seedBookings(ctx context.Context, tt *postgres.Tx, now time.Time) error {
	vid := "VH-001"
	did := "driver1"
	bookings := []model.Booking{
		{
			ID:           "BK-001",
			CustomerID:   "customer1",
			CustomerName: "Rahul Sharma",
			Status:       model.BookingPending,
			Pickup: model.Location{
				Lat: 17.4065, Lng: 78.4772,
				Address: "Hitech City Metro Station",
			},
			Destination: model.Location{
				Lat: 17.4399, Lng: 78.4983,
				Address: "Secunderabad Railway Station",
			},
			ScheduledTime: now.Add(time.Hour),
		},
		{
			ID:           "BK-002",
			CustomerID:   "customer2",
			CustomerName: "Priya Patel",
			VehicleID:    &vid,
			DriverID:     &did,
			Status:       model.BookingAssigned,
			Pickup: model.Location{
				Lat: 17.3850, Lng: 78.4867,
				Address: "Gachibowli Stadium",
			},
			Destination: model.Location{
				Lat: 17.4156, Lng: 78.4347,
				Address: "Banjara Hills Road No 12",
			},
			ScheduledTime: now.Add(30 * time.Minute),
		},
	}
	for i := range bookings {
		if err := bookingsrp.Create(ctx, tt, &bookings[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedAlerts(ctx context.Context, tt *postgres.Tx, now time.Time) error {
	eta := 8
	return alertsrp.Create(ctx, tt, &model.EmergencyAlert{
		ID:       "EM-001",
		Type:     model.EmergencyAmbulance,
		Severity: model.SeverityHigh,
		Location: model.Location{
			Lat: 17.4065, Lng: 78.4772,
			Address: "Hitech City Junction",
		},
		Destination: model.Location{
			Lat: 17.4156, Lng: 78.4347,
			Address: "Apollo Hospital, Jubilee Hills",
		},
		Status:           model.AlertActive,
		Timestamp:        now,
		EstimatedArrival: &eta,
	})
}

func seedMaintenance(ctx context.Context, tt *postgres.Tx, now time.Time) error {
	issue := "Brake wear detected at 78%"
	cost := 4500.0
	return maintenancerp.Create(ctx, tt, &model.Maintenance{
		ID:             "MT-001",
		VehicleID:      "VH-004",
		Type:           model.MaintenancePredictive,
		Description:    "Brake pad replacement predicted",
		Status:         model.MaintenancePending,
		PredictedIssue: &issue,
		EstimatedCost:  &cost,
		ScheduledDate:  now.Add(3 * 24 * time.Hour),
	})
}

func seedMetrics(ctx context.Context, tt *postgres.Tx, now time.Time) error {
	err := metricsrp.RecordAIMetrics(ctx, tt, &model.AIMetrics{
		FleetOptimizationScore:   94,
		TrafficFlowEfficiency:    87,
		SignalTimingOptimization: 91,
		CongestionReduction:      23,
		EmergencyResponseTime:    4,
		Tropical: model.TropicalOptimization{
			Status:             "active",
			PatternRecognition: true,
			RouteOptimization:  78,
			PredictionAnalysis: true,
		},
		RecordedAt: now,
	})
	if err != nil {
		return err
	}
	return metricsrp.RecordSystemHealth(ctx, tt, &model.SystemHealth{
		Uptime:               99.97,
		ResponseTime:         45,
		DataProcessingSpeed:  1250,
		NetworkStatus:        model.NetworkOptimal,
		ProcessingThroughput: 98,
		CPUUsage:             42,
		MemoryUsage:          68,
		RecordedAt:           now,
	})
}
