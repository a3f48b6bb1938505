// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package token exports the expected interfaces for the bearer tokens
// which authenticate the REST API callers. For the corresponding JWT
// implementation, check the adapter layer.
package token

import "github.com/neurofleetx/fleetweb/pkg/core/model"

// Signer represents the expectations from a bearer token issuer. The
// auth use case only needs to mint a token for a freshly registered or
// logged in account and to recover the account identity from a token
// presented by a caller, so no refresh or revocation methods are
// defined here.
type Signer interface {
	// Sign mints a signed token string asserting the u account
	// identity, embedding its identifier, username, and role.
	Sign(u *model.User) (string, error)

	// Parse validates a token string and recovers the asserted
	// identity. An error is returned when the token is malformed,
	// carries a bad signature, or has expired.
	Parse(tok string) (*Claims, error)
}

// Claims holds the identity asserted by a verified token.
type Claims struct {
	UserID   string
	Username string
	Role     model.UserRole
}
