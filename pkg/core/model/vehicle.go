// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"time"
)

// VehicleType categorizes a fleet asset by its body style.
type VehicleType string

// Supported vehicle types.
const (
	VehicleTypeSedan VehicleType = "sedan"
	VehicleTypeSUV   VehicleType = "suv"
	VehicleTypeTruck VehicleType = "truck"
	VehicleTypeVan   VehicleType = "van"
	VehicleTypeBus   VehicleType = "bus"
)

// ParseVehicleType converts its string argument to a VehicleType,
// returning an error for unknown values.
func ParseVehicleType(t string) (VehicleType, error) {
	switch vt := VehicleType(t); vt {
	case VehicleTypeSedan, VehicleTypeSUV, VehicleTypeTruck,
		VehicleTypeVan, VehicleTypeBus:
		return vt, nil
	default:
		return "", fmt.Errorf("unknown vehicle type: %q", t)
	}
}

// VehicleStatus describes the operational state of a vehicle.
// A vehicle is "available" when it may be assigned to a booking,
// "active" while it is serving one, "maintenance" while it is being
// repaired, and "offline" when it is out of the fleet rotation.
type VehicleStatus string

// Supported vehicle statuses.
const (
	VehicleActive      VehicleStatus = "active"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleAvailable   VehicleStatus = "available"
	VehicleOffline     VehicleStatus = "offline"
)

// ParseVehicleStatus converts its string argument to a VehicleStatus,
// returning an error for unknown values.
func ParseVehicleStatus(s string) (VehicleStatus, error) {
	switch vs := VehicleStatus(s); vs {
	case VehicleActive, VehicleMaintenance,
		VehicleAvailable, VehicleOffline:
		return vs, nil
	default:
		return "", fmt.Errorf("unknown vehicle status: %q", s)
	}
}

// Vehicle models a fleet asset which may be persisted in a database.
// The DriverID is nil while no driver is behind the wheel; it is set
// together with the active booking assignment and cleared when that
// booking completes; cancellation leaves the assignment in place.
// LastUpdate is maintained explicitly by the use cases layer at each
// mutation point instead of relying on implicit ORM update hooks.
type Vehicle struct {
	ID           string        `json:"id"`
	Model        string        `json:"model"`
	Type         VehicleType   `json:"type"`
	Status       VehicleStatus `json:"status"`
	LicensePlate string        `json:"licensePlate"`
	Location     Location      `json:"location"`
	Fuel         int           `json:"fuel"`   // percentage, 0..100
	Health       int           `json:"health"` // score, 0..100
	Mileage      int           `json:"mileage"`
	DriverID     *string       `json:"driverId,omitempty"`
	LastUpdate   time.Time     `json:"lastUpdate"`
}
