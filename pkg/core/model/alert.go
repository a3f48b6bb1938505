// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"time"
)

// EmergencyType enumerates the kinds of emergency vehicles which may
// raise an alert.
type EmergencyType string

// Supported emergency types.
const (
	EmergencyAmbulance EmergencyType = "ambulance"
	EmergencyFireTruck EmergencyType = "fire_truck"
	EmergencyPolice    EmergencyType = "police"
	EmergencyVehicle   EmergencyType = "emergency_vehicle"
)

// AlertSeverity ranks an emergency alert.
type AlertSeverity string

// Supported alert severities.
const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// AlertStatus tracks the handling state of an emergency alert.
type AlertStatus string

// Supported alert statuses.
const (
	AlertActive     AlertStatus = "active"
	AlertResponding AlertStatus = "responding"
	AlertResolved   AlertStatus = "resolved"
)

// ParseAlertStatus converts its string argument to an AlertStatus,
// returning an error for unknown values.
func ParseAlertStatus(s string) (AlertStatus, error) {
	switch as := AlertStatus(s); as {
	case AlertActive, AlertResponding, AlertResolved:
		return as, nil
	default:
		return "", fmt.Errorf("unknown alert status: %q", s)
	}
}

// EmergencyAlert models an emergency dispatch from a source location
// towards a destination. EstimatedArrival is in minutes and may be
// nil when no estimate has been computed.
type EmergencyAlert struct {
	ID               string        `json:"id"`
	Type             EmergencyType `json:"type"`
	Severity         AlertSeverity `json:"severity"`
	Location         Location      `json:"location"`
	Destination      Location      `json:"destination"`
	Status           AlertStatus   `json:"status"`
	Timestamp        time.Time     `json:"timestamp"`
	EstimatedArrival *int          `json:"estimatedArrival,omitempty"`
}

// EmergencyRoute is one of the canned demo corridors which the
// emergency resource reports alongside the alerts.
type EmergencyRoute struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Origin      Location   `json:"origin"`
	Destination Location   `json:"destination"`
	Waypoints   []Location `json:"waypoints"`
}
