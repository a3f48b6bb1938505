// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scram exports the expected interfaces for Salted Challenge
// Response Authentication Mechanism (SCRAM). For the corresponding
// implementation, check the adapter layer.
//
// Interfaces should be defined based on the use cases requirements.
// The auth use case only needs to compute a hash string with the
// standard SCRAM format (having a password, salt, and iteration count)
// when an account is registered and to verify a presented password
// against a stored hash string when an account logs in. The challenge
// and response conversation of a complete SCRAM authentication flow
// is not needed at this layer, hence, no conversation interfaces are
// defined here.
package scram

// Hasher represents the expectations from a SCRAM hasher implementation
// which for a specific underlying hash function (e.g., SHA1 or SHA256)
// computes the storedKey and serverKey values whenever its Hash method
// is called with the relevant pass, salt, and iters arguments,
// representing password, random salt value, and hashing iterations
// count. Note that although username and authorization identifier are
// required in a SCRAM protocol, but they do no affect the storedKey and
// serverKey and so are not asked by the Hasher interface. A PBKDF2
// algorithm is computed in order to slow down a dictionary attack as
// detailed in RFC 5802.
type Hasher interface {
	// Hash computes a hash string following the standard scram hash
	// format, so it can be stored and used later for authentication.
	//
	// The pass argument must be non-empty.
	// The salt must contain a base64 encoding of the desired salt
	// bytes, otherwise, if an empty value is passed, a random salt will
	// be generated and used instead.
	// The iters must be at least equal to 4096. However, the RFC 7677
	// recommends to use 15000 or more.
	//
	// In absence of errors, a hashed string will be returned which
	// conforms to the following format.
	//
	//	SCRAM-{SHA-X}${iters}:{b64-salt}${b64-storedKey}:{b64-serverKey}
	Hash(pass, salt string, iters int) (string, error)

	// Verify recomputes the hash of the pass argument using the salt
	// and iteration count which are embedded in the stored hash string
	// and compares the outcome with that stored hash in constant time.
	// It returns true if and only if the password matches. An error
	// is returned when the stored hash does not follow the expected
	// format (so it could not have been produced by Hash).
	Verify(pass, hash string) (bool, error)
}
