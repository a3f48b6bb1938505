// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"time"
)

// BookingStatus enumerates the booking lifecycle states.
type BookingStatus string

// Supported booking statuses. Pending is the initial state, while
// completed and cancelled are terminal.
const (
	BookingPending    BookingStatus = "pending"
	BookingAssigned   BookingStatus = "assigned"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// ParseBookingStatus converts its string argument to a BookingStatus,
// returning an error for unknown values.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch bs := BookingStatus(s); bs {
	case BookingPending, BookingAssigned, BookingInProgress,
		BookingCompleted, BookingCancelled:
		return bs, nil
	default:
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
}

// IsTerminal reports whether no further transitions may leave s.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// IsActive reports whether s counts as an active booking state, that
// is, the booking is neither completed nor cancelled yet.
func (s BookingStatus) IsActive() bool {
	return !s.IsTerminal()
}

// bookingTransitions is the directed graph of the legal booking status
// transitions. Terminal states map to empty slices.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingAssigned, BookingCancelled},
	BookingAssigned:   {BookingInProgress, BookingCancelled},
	BookingInProgress: {BookingCompleted, BookingCancelled},
	BookingCompleted:  {},
	BookingCancelled:  {},
}

// CanTransition reports whether moving a booking from one status to
// another is legal. A same-status update is always accepted, so
// repeated status submissions stay idempotent.
func CanTransition(from, to BookingStatus) bool {
	if from == to {
		return true
	}
	allowed, ok := bookingTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Booking models a customer request to move from a pickup location to
// a destination, optionally fulfilled by a vehicle and driver pair.
// VehicleID and DriverID are either both nil or both set since an
// assignment binds them atomically. Fare and CompletedTime obtain
// values only when the booking reaches the completed status.
type Booking struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customerId"`
	CustomerName  string        `json:"customerName"`
	VehicleID     *string       `json:"vehicleId,omitempty"`
	DriverID      *string       `json:"driverId,omitempty"`
	Status        BookingStatus `json:"status"`
	Pickup        Location      `json:"pickup"`
	Destination   Location      `json:"destination"`
	ScheduledTime time.Time     `json:"scheduledTime"`
	CompletedTime *time.Time    `json:"completedTime,omitempty"`
	Fare          *float64      `json:"fare,omitempty"`
	Rating        *int          `json:"rating,omitempty"`
}
