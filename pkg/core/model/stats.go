// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// DashboardStats aggregates the fleet and bookings counters which the
// dashboard landing page renders. All values are derived read-only
// from the vehicles and bookings stores.
//
// FuelEfficiency is the average fuel level divided by ten as a rough
// km/l proxy, substituted by a fixed 12.5 placeholder when the fleet
// is empty. AvgVehicleHealth degrades to zero on an empty fleet.
type DashboardStats struct {
	TotalVehicles     int64   `json:"totalVehicles"`
	ActiveVehicles    int64   `json:"activeVehicles"`
	InServiceVehicles int64   `json:"inServiceVehicles"`
	OfflineVehicles   int64   `json:"offlineVehicles"`
	CurrentBookings   int64   `json:"currentBookings"`
	TodayRevenue      float64 `json:"todayRevenue"`
	FuelEfficiency    float64 `json:"fuelEfficiency"`
	AvgVehicleHealth  float64 `json:"avgVehicleHealth"`
}
