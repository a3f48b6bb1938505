// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., as required by ORM
// libraries) since adding more tags does not complicate definition of
// a struct, but can prevent unnecessary structs duplication.
package model

// Location represents a geographical point together with its
// human-readable postal address. It is embedded by the Vehicle and
// Booking structs while being mapped to prefixed table columns by the
// adapter layer (e.g., pickup_lat or location_lng).
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// IsZero reports whether l carries no coordinates at all, that is,
// both latitude and longitude are exactly zero. A (0, 0) location is
// in the Gulf of Guinea and may not be used as a pickup point, so it
// doubles as the missing-value marker for booking validation.
func (l Location) IsZero() bool {
	return l.Lat == 0 && l.Lng == 0
}
