// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"time"
)

// MaintenanceType tells why a maintenance record was opened.
type MaintenanceType string

// Supported maintenance types.
const (
	MaintenanceScheduled  MaintenanceType = "scheduled"
	MaintenancePredictive MaintenanceType = "predictive"
	MaintenanceEmergency  MaintenanceType = "emergency"
)

// MaintenanceStatus tracks the progress of a maintenance record.
type MaintenanceStatus string

// Supported maintenance statuses.
const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
)

// ParseMaintenanceStatus converts its string argument to a
// MaintenanceStatus, returning an error for unknown values.
func ParseMaintenanceStatus(s string) (MaintenanceStatus, error) {
	switch ms := MaintenanceStatus(s); ms {
	case MaintenancePending, MaintenanceInProgress,
		MaintenanceCompleted:
		return ms, nil
	default:
		return "", fmt.Errorf("unknown maintenance status: %q", s)
	}
}

// Maintenance is one service record of a vehicle. The PredictedIssue
// is filled only for predictive records and CompletedDate only after
// the work is done.
type Maintenance struct {
	ID             string            `json:"id"`
	VehicleID      string            `json:"vehicleId"`
	Type           MaintenanceType   `json:"type"`
	Description    string            `json:"description"`
	Status         MaintenanceStatus `json:"status"`
	PredictedIssue *string           `json:"predictedIssue,omitempty"`
	EstimatedCost  *float64          `json:"estimatedCost,omitempty"`
	ScheduledDate  time.Time         `json:"scheduledDate"`
	CompletedDate  *time.Time        `json:"completedDate,omitempty"`
}

// MaintenanceForecast is the placeholder predictive-maintenance report
// which the dashboard exposes. Its predictions are not produced by an
// actual model; see the monitoruc use case for the canned values.
type MaintenanceForecast struct {
	Predictions       []ComponentPrediction `json:"predictions"`
	FleetHealthScore  int                   `json:"fleetHealthScore"`
	TotalPredictions  int                   `json:"totalPredictions"`
	HighPriorityCount int                   `json:"highPriorityCount"`
}

// ComponentPrediction is one entry of the MaintenanceForecast.
type ComponentPrediction struct {
	VehicleID        string `json:"vehicleId"`
	Component        string `json:"component"`
	PredictedFailure string `json:"predictedFailure"`
	Confidence       int    `json:"confidence"`
	Recommendation   string `json:"recommendation"`
}
