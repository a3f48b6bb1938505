// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scram presents an implementation of SCRAM-SHA-256 and
// SCRAM-SHA-1 mechanisms. See the SHA256 and SHA1 functions for their
// instantiation logic. When a mechanism for a specific underlying hash
// function is instantiated, it can be used for generation of hash
// strings in the SCRAM standard format and for verification of
// passwords against previously generated hash strings.
// This format is also known as the scram encrypted password format,
// however, it may not be reversed (so no encryption/decryption is
// taking place).
package scram

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xdg-go/scram"
)

// Mechanism provides a Salted Challenge Response Authentication
// Mechanism (SCRAM) having a fixed underlying hash algorithm.
//
// It implements the core layer scram.Hasher interface, so it may be
// used in the use cases layer without any dependency on the actual
// implementation. This package relies on the github.com/xdg-go/scram
// module for the SCRAM implementation.
type Mechanism struct {
	hashGenerator scram.HashGeneratorFcn
	outLen        int // bytes
	name          string
}

// SHA1 returns a new Mechanism instance using the SHA1 as its
// underlying hash algorithm.
func SHA1() *Mechanism {
	return &Mechanism{
		hashGenerator: scram.SHA1,
		outLen:        160 / 8,
		name:          "SCRAM-SHA-1",
	}
}

// SHA256 returns a new Mechanism instance using the SHA256 as its
// underlying hash algorithm.
func SHA256() *Mechanism {
	return &Mechanism{
		hashGenerator: scram.SHA256,
		outLen:        256 / 8,
		name:          "SCRAM-SHA-256",
	}
}

// Hash computes a hash string following the standard scram hash format,
// so it can be stored and used later for authentication.
//
// The pass argument must be non-empty. The user and authzID params
// are not asked because they are not used in the hash output. The
// given password will be normalized accoriding to the SASLprep
// profile (defined by RFC 4013) of the stringprep algorithm (which
// is defined by RFC 3454) and any failure in that normalization
// returns an error.
//
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
func (m *Mechanism) Hash(pass, salt string, iters int) (string, error) {
	switch {
	case pass == "":
		return "", errors.New("password must be non-empty")
	case iters < 4096:
		return "", fmt.Errorf("iters (%d) is less than 4096", iters)
	}
	if salt == "" {
		saltBytes := make([]byte, m.outLen)
		if _, err := rand.Read(saltBytes); err != nil {
			return "", fmt.Errorf("creating random salt: %w", err)
		}
		s := make([]byte, base64.StdEncoding.EncodedLen(m.outLen))
		base64.StdEncoding.Encode(s, saltBytes)
		salt = string(s)
	}
	sc, err := m.storedCredentials(pass, salt, iters)
	if err != nil {
		return "", fmt.Errorf("obtaining stored credentials: %w", err)
	}
	h := fmt.Sprintf(
		"%s$%d:%s$%s:%s",
		m.name,
		iters, salt,
		base64.StdEncoding.EncodeToString(sc.StoredKey),
		base64.StdEncoding.EncodeToString(sc.ServerKey),
	)
	return h, nil
}

// Verify parses the hash string (as produced by the Hash method),
// recomputes the stored and server keys of the pass argument using the
// embedded salt and iterations count, and compares them with the
// embedded keys in constant time. A malformed hash string or one which
// was generated by a different mechanism causes an error.
func (m *Mechanism) Verify(pass, hash string) (bool, error) {
	if pass == "" {
		return false, errors.New("password must be non-empty")
	}
	iters, salt, keys, err := m.parse(hash)
	if err != nil {
		return false, err
	}
	sc, err := m.storedCredentials(pass, salt, iters)
	if err != nil {
		return false, fmt.Errorf("obtaining stored credentials: %w", err)
	}
	expected := fmt.Sprintf(
		"%s:%s",
		base64.StdEncoding.EncodeToString(sc.StoredKey),
		base64.StdEncoding.EncodeToString(sc.ServerKey),
	)
	return subtle.ConstantTimeCompare(
		[]byte(keys), []byte(expected),
	) == 1, nil
}

// parse splits a hash string into its iterations count, base64 salt,
// and the colon-joined base64 stored and server keys.
func (m *Mechanism) parse(hash string) (int, string, string, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 3 {
		return 0, "", "", fmt.Errorf(
			"expected 3 dollar-separated parts, but got %d", len(parts),
		)
	}
	if parts[0] != m.name {
		return 0, "", "", fmt.Errorf(
			"mechanism mismatch: %q is not %q", parts[0], m.name,
		)
	}
	itersSalt := strings.SplitN(parts[1], ":", 2)
	if len(itersSalt) != 2 {
		return 0, "", "", errors.New("missing salt part")
	}
	iters, err := strconv.Atoi(itersSalt[0])
	if err != nil {
		return 0, "", "", fmt.Errorf("parsing iters: %w", err)
	}
	if iters < 4096 {
		return 0, "", "", fmt.Errorf("iters (%d) is less than 4096", iters)
	}
	return iters, itersSalt[1], parts[2], nil
}

func (m *Mechanism) storedCredentials(
	pass, salt string, iters int,
) (*scram.StoredCredentials, error) {
	c, err := m.hashGenerator.NewClient("username", pass, "authzID")
	if err != nil {
		return nil, fmt.Errorf("creating SCRAM client: %w", err)
	}
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 salt: %w", err)
	}
	// Indeed, these options are not required because we do not call
	// the NewConversation method. However, we have it here for sake
	// of completeness (similar to explanation of the ClientConversation
	// and ServerConversation interfaces in pkg/core/scram/scram.go).
	c = c.WithMinIterations(iters).WithNonceGenerator(func() string {
		return salt
	})
	sc := c.GetStoredCredentials(scram.KeyFactors{
		Salt:  string(saltBytes),
		Iters: iters,
	})
	return &sc, nil
}
