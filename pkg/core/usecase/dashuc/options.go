// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package dashuc

import (
	"errors"
	"time"
)

// Option is a functional option for the dashboard use case.
type Option func(uc *UseCase) error

// WithClock option replaces the source of the current time which
// anchors the local calendar day of the revenue aggregation.
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
