// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	for _, tc := range []struct {
		name     string
		from, to model.BookingStatus
		allowed  bool
	}{
		{
			name: "pending to assigned",
			from: model.BookingPending, to: model.BookingAssigned,
			allowed: true,
		},
		{
			name: "pending to cancelled",
			from: model.BookingPending, to: model.BookingCancelled,
			allowed: true,
		},
		{
			name: "pending to in_progress skips assignment",
			from: model.BookingPending, to: model.BookingInProgress,
			allowed: false,
		},
		{
			name: "pending to completed skips the ride",
			from: model.BookingPending, to: model.BookingCompleted,
			allowed: false,
		},
		{
			name: "assigned to in_progress",
			from: model.BookingAssigned, to: model.BookingInProgress,
			allowed: true,
		},
		{
			name: "assigned back to pending",
			from: model.BookingAssigned, to: model.BookingPending,
			allowed: false,
		},
		{
			name: "in_progress to completed",
			from: model.BookingInProgress, to: model.BookingCompleted,
			allowed: true,
		},
		{
			name: "in_progress to cancelled",
			from: model.BookingInProgress, to: model.BookingCancelled,
			allowed: true,
		},
		{
			name: "completed is terminal",
			from: model.BookingCompleted, to: model.BookingCancelled,
			allowed: false,
		},
		{
			name: "cancelled is terminal",
			from: model.BookingCancelled, to: model.BookingPending,
			allowed: false,
		},
		{
			name: "same status is idempotent",
			from: model.BookingCompleted, to: model.BookingCompleted,
			allowed: true,
		},
		{
			name: "unknown status has no transitions",
			from: model.BookingStatus("bogus"), to: model.BookingPending,
			allowed: false,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(
				t, tc.allowed, model.CanTransition(tc.from, tc.to),
				"transition %s -> %s", tc.from, tc.to,
			)
		})
	}
}

func TestBookingStatusTerminality(t *testing.T) {
	assert.True(t, model.BookingCompleted.IsTerminal())
	assert.True(t, model.BookingCancelled.IsTerminal())
	assert.False(t, model.BookingPending.IsTerminal())
	assert.False(t, model.BookingAssigned.IsTerminal())
	assert.False(t, model.BookingInProgress.IsTerminal())

	assert.True(t, model.BookingPending.IsActive())
	assert.False(t, model.BookingCompleted.IsActive())
}

func TestParseBookingStatus(t *testing.T) {
	for _, s := range []string{
		"pending", "assigned", "in_progress", "completed", "cancelled",
	} {
		bs, err := model.ParseBookingStatus(s)
		assert.NoError(t, err, "status %q must parse", s)
		assert.Equal(t, model.BookingStatus(s), bs)
	}
	_, err := model.ParseBookingStatus("parked")
	assert.ErrorContains(t, err, "unknown booking status")
	_, err = model.ParseBookingStatus("")
	assert.Error(t, err, "empty status must not parse")
}
