// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dashuc contains the dashboard UseCase, a read-only consumer
// of the vehicles, bookings, and recorded metrics stores. It never
// mutates anything and tolerates an empty fleet and bookings set
// without dividing by zero.
package dashuc

import (
	"context"
	"fmt"
	"time"

	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/neurofleetx/fleetweb/pkg/core/repo"
)

// FallbackFuelEfficiency is reported when the fleet is empty. It is a
// placeholder constant, not a computed value.
const FallbackFuelEfficiency = 12.5

// UseCase represents the dashboard use case. It holds a database
// connection pool and the vehicles, bookings, and metrics repository
// instances (to be guided with the DB pool).
type UseCase struct {
	pool       repo.Pool
	vehiclesrp repo.Vehicles
	bookingsrp repo.Bookings
	metricsrp  repo.Metrics

	now func() time.Time
}

// New instantiates a dashboard use case.
func New(
	p repo.Pool,
	v repo.Vehicles,
	b repo.Bookings,
	m repo.Metrics,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{pool: p, vehiclesrp: v, bookingsrp: b, metricsrp: m}
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

// Stats use case aggregates the fleet and bookings counters which the
// dashboard landing page renders. Today's revenue sums the fares of
// the bookings completed since the local midnight; the average health
// degrades to zero and the fuel efficiency to its fixed fallback when
// the fleet is empty.
func (dash *UseCase) Stats(ctx context.Context) (
	st *model.DashboardStats, err error,
) {
	err = dash.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		vq := dash.vehiclesrp.Conn(c)
		bq := dash.bookingsrp.Conn(c)
		st = &model.DashboardStats{}
		if st.TotalVehicles, err = vq.CountAll(ctx); err != nil {
			return err
		}
		statusCounts := []struct {
			status model.VehicleStatus
			dst    *int64
		}{
			{model.VehicleActive, &st.ActiveVehicles},
			{model.VehicleMaintenance, &st.InServiceVehicles},
			{model.VehicleOffline, &st.OfflineVehicles},
		}
		for _, sc := range statusCounts {
			if *sc.dst, err = vq.CountByStatus(ctx, sc.status); err != nil {
				return err
			}
		}
		if st.CurrentBookings, err = bq.CountActive(ctx); err != nil {
			return err
		}
		st.TodayRevenue, err = bq.SumRevenueSince(ctx, dash.startOfDay())
		if err != nil {
			return err
		}
		health, err := vq.AverageHealth(ctx)
		if err != nil {
			return err
		}
		if health != nil {
			st.AvgVehicleHealth = *health
		}
		fuel, err := vq.AverageFuel(ctx)
		if err != nil {
			return err
		}
		st.FuelEfficiency = FallbackFuelEfficiency
		if fuel != nil {
			// crude km/l estimate out of the average tank level
			st.FuelEfficiency = *fuel / 10
		}
		return nil
	})
	if err != nil {
		st = nil
	}
	return
}

// AIMetrics use case reports the latest recorded AI metrics snapshot,
// falling back to fixed demo values when none has been recorded.
func (dash *UseCase) AIMetrics(ctx context.Context) (
	m *model.AIMetrics, err error,
) {
	err = dash.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		m, err = dash.metricsrp.Conn(c).LatestAIMetrics(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = defaultAIMetrics()
	}
	return m, nil
}

// Tropical use case reports the tropical-route widget flags of the
// latest AI metrics snapshot.
func (dash *UseCase) Tropical(ctx context.Context) (
	*model.TropicalOptimization, error,
) {
	m, err := dash.AIMetrics(ctx)
	if err != nil {
		return nil, err
	}
	return &m.Tropical, nil
}

// SystemHealth use case reports the latest recorded system health
// snapshot, falling back to fixed demo values when none has been
// recorded.
func (dash *UseCase) SystemHealth(ctx context.Context) (
	h *model.SystemHealth, err error,
) {
	err = dash.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		h, err = dash.metricsrp.Conn(c).LatestSystemHealth(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if h == nil {
		h = defaultSystemHealth()
	}
	return h, nil
}

// TrafficAnalysis use case reports the canned city traffic summary.
func (dash *UseCase) TrafficAnalysis(context.Context) *model.TrafficAnalysis {
	return &model.TrafficAnalysis{
		PeakType:        "morning",
		AvgTravelTime:   28,
		BaseSpeed:       45,
		CongestionLevel: 35,
		OptimizedRoutes: 156,
	}
}

// startOfDay returns the local midnight of the current day, so
// today's revenue covers the local calendar day.
func (dash *UseCase) startOfDay() time.Time {
	now := dash.now()
	return time.Date(
		now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location(),
	)
}

func defaultAIMetrics() *model.AIMetrics {
	return &model.AIMetrics{
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
	}
}

func defaultSystemHealth() *model.SystemHealth {
	return &model.SystemHealth{
		Uptime:               99.97,
		ResponseTime:         45,
		DataProcessingSpeed:  1250,
		NetworkStatus:        model.NetworkOptimal,
		ProcessingThroughput: 98,
		CPUUsage:             42,
		MemoryUsage:          68,
	}
}
