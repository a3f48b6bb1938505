// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Telemetry is one sample of the sensor readings which a vehicle
// reports periodically. Rows are append-only and identified by a
// store-assigned sequence number, so the latest sample per vehicle is
// the one with the largest ID.
type Telemetry struct {
	ID           int64     `json:"id"`
	VehicleID    string    `json:"vehicleId"`
	Timestamp    time.Time `json:"timestamp"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Speed        int       `json:"speed"` // km/h
	Fuel         int       `json:"fuel"`  // percentage, 0..100
	EngineHealth int       `json:"engineHealth"`
	BrakeHealth  int       `json:"brakeHealth"`
	TireHealth   int       `json:"tireHealth"`
}
