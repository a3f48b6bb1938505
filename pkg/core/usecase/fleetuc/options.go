// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fleetuc

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Option is a functional option for the vehicles use case.
type Option func(uc *UseCase) error

// WithIDGenerator option replaces the vehicle identifier generation
// strategy. The default strategy produces identifiers such as
// VH-1A2B3C4D out of random UUIDs.
func WithIDGenerator(g func() string) Option {
	return func(uc *UseCase) error {
		if g == nil {
			return errors.New("id generator must be non-nil")
		}
		if uc.newID != nil {
			return errors.New("id generator is already configured")
		}
		uc.newID = g
		return nil
	}
}

// WithClock option replaces the source of the current time which is
// recorded as the vehicles last-update stamp.
func WithClock(c func() time.Time) Option {
	return func(uc *UseCase) error {
		if c == nil {
			return errors.New("clock must be non-nil")
		}
		if uc.now != nil {
			return errors.New("clock is already configured")
		}
		uc.now = c
		return nil
	}
}

func vehicleID() string {
	u := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "VH-" + strings.ToUpper(u[:8])
}
