// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package authuc

import (
	"errors"

	"github.com/google/uuid"
)

// RFC 7677 recommends at least 15000 iterations for SCRAM-SHA-256.
const defaultHashIters = 15000

// Option is a functional option for the accounts use case.
type Option func(uc *UseCase) error

// WithIDGenerator option replaces the account identifier generation
// strategy. The default strategy produces random UUID strings.
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

// WithHashIterations option replaces the SCRAM hash iterations count.
// RFC 5802 requires at least 4096 iterations.
func WithHashIterations(iters int) Option {
	return func(uc *UseCase) error {
		if iters < 4096 {
			return errors.New("at least 4096 hash iterations are required")
		}
		if uc.iters != 0 {
			return errors.New("hash iterations count is already configured")
		}
		uc.iters = iters
		return nil
	}
}

func userID() string {
	return uuid.NewString()
}
