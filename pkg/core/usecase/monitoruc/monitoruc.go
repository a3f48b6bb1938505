// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package monitoruc contains the fleet monitoring UseCase covering the
// telemetry, maintenance, and emergency alert read models, plus the
// telemetry ingestion path. The predictive-maintenance forecast and
// the emergency corridors are canned demo payloads, not computed ones.
package monitoruc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neurofleetx/fleetweb/pkg/core/cerr"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/neurofleetx/fleetweb/pkg/core/repo"
)

// UseCase represents the fleet monitoring use case. It holds a
// database connection pool and the telemetry, maintenance, and alerts
// repository instances (to be guided with the DB pool).
type UseCase struct {
	pool          repo.Pool
	telemetryrp   repo.Telemetry
	maintenancerp repo.MaintenanceRecords
	alertsrp      repo.Alerts

	now func() time.Time
}

// New instantiates a fleet monitoring use case.
func New(
	p repo.Pool,
	t repo.Telemetry,
	m repo.MaintenanceRecords,
	a repo.Alerts,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{
		pool:          p,
		telemetryrp:   t,
		maintenancerp: m,
		alertsrp:      a,
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc, nil
}

// Ingest use case appends one telemetry sample. A zero timestamp is
// replaced by the current time.
func (mn *UseCase) Ingest(ctx context.Context, t *model.Telemetry) error {
	if t.VehicleID == "" {
		return cerr.BadRequest(errors.New("vehicle id is required"))
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = mn.now()
	}
	return mn.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return mn.telemetryrp.Conn(c).Insert(ctx, t)
	})
}

// Live use case returns the most recent telemetry sample of every
// reporting vehicle.
func (mn *UseCase) Live(ctx context.Context) (
	ts []model.Telemetry, err error,
) {
	err = mn.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ts, err = mn.telemetryrp.Conn(c).LatestPerVehicle(ctx)
		return err
	})
	if err != nil {
		ts = nil
	}
	return
}

// VehicleTelemetry use case returns the samples of one vehicle,
// newest first.
func (mn *UseCase) VehicleTelemetry(ctx context.Context, vid string) (
	ts []model.Telemetry, err error,
) {
	err = mn.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ts, err = mn.telemetryrp.Conn(c).ListByVehicle(ctx, vid)
		return err
	})
	if err != nil {
		ts = nil
	}
	return
}

// Maintenance use case returns all maintenance records.
func (mn *UseCase) Maintenance(ctx context.Context) (
	ms []model.Maintenance, err error,
) {
	err = mn.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ms, err = mn.maintenancerp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		ms = nil
	}
	return
}

// VehicleMaintenance use case returns the maintenance records of one
// vehicle.
func (mn *UseCase) VehicleMaintenance(ctx context.Context, vid string) (
	ms []model.Maintenance, err error,
) {
	err = mn.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ms, err = mn.maintenancerp.Conn(c).ListByVehicle(ctx, vid)
		return err
	})
	if err != nil {
		ms = nil
	}
	return
}

// Forecast use case reports the placeholder predictive-maintenance
// payload. The values mirror the demo dataset; no model runs here.
func (mn *UseCase) Forecast(context.Context) *model.MaintenanceForecast {
	return &model.MaintenanceForecast{
		Predictions: []model.ComponentPrediction{
			{
				VehicleID:        "VH-001",
				Component:        "brakes",
				PredictedFailure: "2024-02-15",
				Confidence:       87,
				Recommendation:   "Schedule brake pad replacement",
			},
			{
				VehicleID:        "VH-003",
				Component:        "engine",
				PredictedFailure: "2024-02-20",
				Confidence:       72,
				Recommendation:   "Oil change recommended",
			},
		},
		FleetHealthScore:  89,
		TotalPredictions:  12,
		HighPriorityCount: 3,
	}
}

// Alerts use case returns all emergency alerts.
func (mn *UseCase) Alerts(ctx context.Context) (
	as []model.EmergencyAlert, err error,
) {
	err = mn.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		as, err = mn.alertsrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		as = nil
	}
	return
}

// ActiveAlerts use case returns the alerts which are still active.
func (mn *UseCase) ActiveAlerts(ctx context.Context) (
	as []model.EmergencyAlert, err error,
) {
	err = mn.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		as, err = mn.alertsrp.Conn(c).ListByStatus(ctx, model.AlertActive)
		return err
	})
	if err != nil {
		as = nil
	}
	return
}

// Routes use case reports the canned emergency corridors of the demo
// city (Hyderabad).
func (mn *UseCase) Routes(context.Context) []model.EmergencyRoute {
	return []model.EmergencyRoute{
		{
			ID:          "route-1",
			Type:        string(model.EmergencyAmbulance),
			Origin:      model.Location{Lat: 17.4065, Lng: 78.4772},
			Destination: model.Location{Lat: 17.4156, Lng: 78.4347},
			Waypoints:   []model.Location{},
		},
		{
			ID:          "route-2",
			Type:        string(model.EmergencyFireTruck),
			Origin:      model.Location{Lat: 17.3850, Lng: 78.4867},
			Destination: model.Location{Lat: 17.4399, Lng: 78.4983},
			Waypoints:   []model.Location{},
		},
	}
}
