// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package jwt_test

import (
	"testing"
	"time"

	"github.com/neurofleetx/fleetweb/pkg/adapter/auth/jwt"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = &model.User{
	ID:       "u-1",
	Username: "admin",
	Email:    "admin@example.com",
	Role:     model.RoleAdmin,
}

func TestNewRejectsBadArgs(t *testing.T) {
	_, err := jwt.New("", time.Hour)
	assert.ErrorContains(t, err, "secret must be non-empty")
	_, err = jwt.New("shared-secret", 0)
	assert.ErrorContains(t, err, "must be positive")
	_, err = jwt.New("shared-secret", -time.Minute)
	assert.ErrorContains(t, err, "must be positive")
}

func TestSignParseRoundTrip(t *testing.T) {
	s, err := jwt.New("shared-secret", time.Hour)
	require.NoError(t, err)

	tok, err := s.Sign(testUser)
	require.NoError(t, err, "signing must succeed")
	require.NotEmpty(t, tok)

	c, err := s.Parse(tok)
	require.NoError(t, err, "parsing must succeed")
	assert.Equal(t, "u-1", c.UserID)
	assert.Equal(t, "admin", c.Username)
	assert.Equal(t, model.RoleAdmin, c.Role)
}

func TestParseRejectsForeignTokens(t *testing.T) {
	s1, err := jwt.New("shared-secret", time.Hour)
	require.NoError(t, err)
	s2, err := jwt.New("another-secret", time.Hour)
	require.NoError(t, err)

	tok, err := s1.Sign(testUser)
	require.NoError(t, err)

	_, err = s2.Parse(tok)
	assert.Error(t, err, "a token of another secret must not parse")

	_, err = s1.Parse("not.a.token")
	assert.Error(t, err, "garbage must not parse")
}

func TestParseRejectsExpiredTokens(t *testing.T) {
	s, err := jwt.New("shared-secret", time.Nanosecond)
	require.NoError(t, err)

	tok, err := s.Sign(testUser)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = s.Parse(tok)
	assert.Error(t, err, "an expired token must not parse")
}
