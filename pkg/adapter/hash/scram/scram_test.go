// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package scram_test

import (
	"strings"
	"testing"

	"github.com/neurofleetx/fleetweb/pkg/adapter/hash/scram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFormat(t *testing.T) {
	m := scram.SHA256()
	h, err := m.Hash("secret-pass", "", 4096)
	require.NoError(t, err, "hashing must succeed")
	assert.True(
		t, strings.HasPrefix(h, "SCRAM-SHA-256$4096:"),
		"unexpected hash prefix: %q", h,
	)
	parts := strings.Split(h, "$")
	assert.Equal(t, 3, len(parts), "expected 3 dollar-separated parts")
}

func TestHashRejectsBadArgs(t *testing.T) {
	m := scram.SHA256()
	_, err := m.Hash("", "", 4096)
	assert.ErrorContains(t, err, "password must be non-empty")
	_, err = m.Hash("secret-pass", "", 4095)
	assert.ErrorContains(t, err, "less than 4096")
}

func TestVerifyRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    *scram.Mechanism
	}{
		{name: "sha1", m: scram.SHA1()},
		{name: "sha256", m: scram.SHA256()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h, err := tc.m.Hash("secret-pass", "", 4096)
			require.NoError(t, err, "hashing must succeed")

			ok, err := tc.m.Verify("secret-pass", h)
			require.NoError(t, err, "verification must not error")
			assert.True(t, ok, "correct password must verify")

			ok, err = tc.m.Verify("wrong-pass", h)
			require.NoError(t, err, "verification must not error")
			assert.False(t, ok, "wrong password must not verify")
		})
	}
}

func TestVerifyIsDeterministicPerSalt(t *testing.T) {
	m := scram.SHA256()
	h1, err := m.Hash("secret-pass", "c2FsdHNhbHRzYWx0", 4096)
	require.NoError(t, err)
	h2, err := m.Hash("secret-pass", "c2FsdHNhbHRzYWx0", 4096)
	require.NoError(t, err)
	assert.Equal(t, h1, h2, "fixed salt must fix the hash string")

	h3, err := m.Hash("secret-pass", "", 4096)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3, "random salt must vary the hash string")
}

func TestVerifyRejectsMalformedHashes(t *testing.T) {
	m := scram.SHA256()
	h, err := m.Hash("secret-pass", "", 4096)
	require.NoError(t, err)

	for _, tc := range []struct {
		name, hash, errPart string
	}{
		{
			name:    "empty hash",
			hash:    "",
			errPart: "expected 3 dollar-separated parts",
		},
		{
			name:    "mechanism mismatch",
			hash:    strings.Replace(h, "SHA-256", "SHA-1", 1),
			errPart: "mechanism mismatch",
		},
		{
			name:    "missing salt",
			hash:    "SCRAM-SHA-256$4096$a:b",
			errPart: "missing salt part",
		},
		{
			name:    "non-numeric iters",
			hash:    "SCRAM-SHA-256$many:salt$a:b",
			errPart: "parsing iters",
		},
		{
			name:    "too few iters",
			hash:    "SCRAM-SHA-256$1000:salt$a:b",
			errPart: "less than 4096",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Verify("secret-pass", tc.hash)
			assert.ErrorContains(t, err, tc.errPart)
		})
	}
}
