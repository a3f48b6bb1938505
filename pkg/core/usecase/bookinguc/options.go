// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package bookinguc

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default fare band in currency units; a completed booking obtains a
// placeholder fare drawn uniformly from [defaultFareMin, defaultFareMax).
const (
	defaultFareMin = 200
	defaultFareMax = 700
)

// Option is a functional option for the booking lifecycle use case.
type Option func(uc *UseCase) error

// WithIDGenerator option replaces the booking identifier generation
// strategy. The default strategy produces identifiers such as
// BK-1A2B3C4D out of random UUIDs. This option may be passed to the
// New() function, e.g., for deterministic identifiers in tests or for
// store-assigned sequences.
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
// consulted for completion times and the vehicles last-update stamps.
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

// WithFareBand option configures the [min, max) interval of the
// placeholder fare which a completed booking obtains. No pricing model
// backs these values.
func WithFareBand(min, max float64) Option {
	return func(uc *UseCase) error {
		switch {
		case min < 0:
			return fmt.Errorf("fare minimum (%g) is negative", min)
		case max <= min:
			return fmt.Errorf(
				"fare maximum (%g) is not above minimum (%g)", max, min,
			)
		}
		if uc.fare != nil {
			return errors.New("fare pricer is already configured")
		}
		uc.fare = uniformPricer(min, max)
		return nil
	}
}

// WithFarePricer option replaces the fare generation entirely, so
// tests can inject a deterministic value.
func WithFarePricer(p func() float64) Option {
	return func(uc *UseCase) error {
		if p == nil {
			return errors.New("fare pricer must be non-nil")
		}
		if uc.fare != nil {
			return errors.New("fare pricer is already configured")
		}
		uc.fare = p
		return nil
	}
}

func uniformPricer(min, max float64) func() float64 {
	return func() float64 {
		return min + rand.Float64()*(max-min)
	}
}

func bookingID() string {
	u := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BK-" + strings.ToUpper(u[:8])
}
