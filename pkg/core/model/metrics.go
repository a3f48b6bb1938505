// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// AIMetrics is a snapshot of the fleet optimization scores which the
// AI dashboard widgets render. The values are recorded by an external
// process (or seeded as demo data); this backend only reports the
// latest snapshot and falls back to fixed defaults when the table is
// empty. No inference happens here.
type AIMetrics struct {
	ID                       int64                `json:"-"`
	FleetOptimizationScore   int                  `json:"fleetOptimizationScore"`
	TrafficFlowEfficiency    int                  `json:"trafficFlowEfficiency"`
	SignalTimingOptimization int                  `json:"signalTimingOptimization"`
	CongestionReduction      int                  `json:"congestionReduction"`
	EmergencyResponseTime    int                  `json:"emergencyResponseTime"`
	Tropical                 TropicalOptimization `json:"tropicalOptimization"`
	RecordedAt               time.Time            `json:"-"`
}

// TropicalOptimization groups the tropical-route widget flags of an
// AIMetrics snapshot.
type TropicalOptimization struct {
	Status             string `json:"status"`
	PatternRecognition bool   `json:"patternRecognition"`
	RouteOptimization  int    `json:"routeOptimization"`
	PredictionAnalysis bool   `json:"predictionAnalysis"`
}

// NetworkStatus grades the backend network connectivity.
type NetworkStatus string

// Supported network statuses.
const (
	NetworkOptimal  NetworkStatus = "optimal"
	NetworkDegraded NetworkStatus = "degraded"
	NetworkCritical NetworkStatus = "critical"
)

// SystemHealth is a snapshot of the backend runtime health counters.
// Like AIMetrics, the latest recorded row is reported with fixed
// defaults standing in for an empty table.
type SystemHealth struct {
	ID                   int64         `json:"-"`
	Uptime               float64       `json:"uptime"`
	ResponseTime         int           `json:"responseTime"`
	DataProcessingSpeed  int           `json:"dataProcessingSpeed"`
	NetworkStatus        NetworkStatus `json:"networkStatus"`
	ProcessingThroughput int           `json:"processingThroughput"`
	CPUUsage             int           `json:"cpuUsage"`
	MemoryUsage          int           `json:"memoryUsage"`
	RecordedAt           time.Time     `json:"-"`
}

// TrafficAnalysis is the canned city traffic summary exposed by the
// system resource.
type TrafficAnalysis struct {
	PeakType        string `json:"peakType"`
	AvgTravelTime   int    `json:"avgTravelTime"`
	BaseSpeed       int    `json:"baseSpeed"`
	CongestionLevel int    `json:"congestionLevel"`
	OptimizedRoutes int    `json:"optimizedRoutes"`
}
