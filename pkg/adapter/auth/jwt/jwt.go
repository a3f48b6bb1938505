// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package jwt implements the core layer token.Signer interface with
// HS256 signed JSON Web Tokens, relying on the
// github.com/golang-jwt/jwt module.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/neurofleetx/fleetweb/pkg/core/token"
)

// Signer mints and verifies HS256 tokens with a shared secret. The
// account identifier travels in the standard subject claim while the
// username and role use private claims.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// New instantiates a Signer with the given shared secret and the
// tokens time-to-live duration.
func New(secret string, ttl time.Duration) (*Signer, error) {
	switch {
	case secret == "":
		return nil, errors.New("secret must be non-empty")
	case ttl <= 0:
		return nil, fmt.Errorf("ttl (%v) must be positive", ttl)
	}
	return &Signer{secret: []byte(secret), ttl: ttl}, nil
}

type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Sign mints a signed token string asserting the u account identity.
func (s *Signer) Sign(u *model.User) (string, error) {
	now := time.Now()
	c := claims{
		Username: u.Username,
		Role:     string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	tok, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing: %w", err)
	}
	return tok, nil
}

// Parse validates a token string and recovers the asserted identity.
// Expiry is checked by the jwt module as part of the claims
// validation.
func (s *Signer) Parse(tok string) (*token.Claims, error) {
	var c claims
	t, err := jwt.ParseWithClaims(
		tok, &c,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf(
					"unexpected signing method: %v", t.Header["alg"],
				)
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	if !t.Valid {
		return nil, errors.New("invalid token")
	}
	role, err := model.ParseUserRole(c.Role)
	if err != nil {
		return nil, fmt.Errorf("parsing role claim: %w", err)
	}
	return &token.Claims{
		UserID:   c.Subject,
		Username: c.Username,
		Role:     role,
	}, nil
}
