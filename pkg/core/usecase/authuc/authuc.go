// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package authuc contains the accounts UseCase, covering registration
// and login of the portal accounts. Passwords are stored as SCRAM hash
// strings and successful calls mint a bearer token for the caller.
package authuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/neurofleetx/fleetweb/pkg/core/cerr"
	"github.com/neurofleetx/fleetweb/pkg/core/log"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/neurofleetx/fleetweb/pkg/core/repo"
	"github.com/neurofleetx/fleetweb/pkg/core/scram"
	"github.com/neurofleetx/fleetweb/pkg/core/token"
)

// UseCase represents the accounts use case. It holds a database
// connection pool, the users repository instance (to be guided with
// the DB pool), a SCRAM hasher, and a bearer token signer.
type UseCase struct {
	pool    repo.Pool
	usersrp repo.Users
	hasher  scram.Hasher
	signer  token.Signer

	newID func() string
	iters int
}

// New instantiates an accounts use case.
func New(
	p repo.Pool,
	u repo.Users,
	h scram.Hasher,
	s token.Signer,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{pool: p, usersrp: u, hasher: h, signer: s}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.newID == nil {
		uc.newID = userID
	}
	if uc.iters == 0 {
		uc.iters = defaultHashIters
	}
	return uc, nil
}

// RegisterInput carries the fields of a registration request. An
// unrecognized or empty role is stored as the customer role.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Session reports a logged in identity and its freshly minted bearer
// token.
type Session struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Register use case creates one account. It categorizes errors as
// a bad request error (for missing fields), a conflict error (for an
// already taken username or email), or other errors.
func (auth *UseCase) Register(ctx context.Context, in RegisterInput) (
	*Session, error,
) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, cerr.BadRequest(
			errors.New("username, email, and password are required"),
		)
	}
	role, err := model.ParseUserRole(in.Role)
	if err != nil {
		role = model.RoleCustomer
	}
	hash, err := auth.hasher.Hash(in.Password, "", auth.iters)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	u := &model.User{
		ID:           auth.newID(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}
	err = auth.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		uq := auth.usersrp.Conn(c)
		taken, err := uq.ExistsByUsername(ctx, in.Username)
		if err != nil {
			return err
		}
		if taken {
			return cerr.Conflict(errors.New("username is already taken"))
		}
		taken, err = uq.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if taken {
			return cerr.Conflict(errors.New("email is already registered"))
		}
		return uq.Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "registered account",
		slog.String("user", u.ID),
		slog.String("role", string(u.Role)),
	)
	return auth.session(u)
}

// Login use case authenticates an account by its email and password.
// It categorizes errors as an authentication error (for an unknown
// email or a mismatching password) or other errors. The unknown email
// and bad password cases are reported identically, so a caller cannot
// enumerate which emails are registered.
func (auth *UseCase) Login(ctx context.Context, email, pass string) (
	s *Session, err error,
) {
	var u *model.User
	err = auth.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		u, err = auth.usersrp.Conn(c).GetByEmail(ctx, email)
		return err
	})
	switch {
	case isNotFound(err):
		return nil, cerr.Authentication(errors.New("invalid credentials"))
	case err != nil:
		return nil, err
	}
	ok, err := auth.hasher.Verify(pass, u.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, cerr.Authentication(errors.New("invalid credentials"))
	}
	return auth.session(u)
}

// Authenticate use case recovers the identity asserted by a bearer
// token, categorizing all token defects as an authentication error.
func (auth *UseCase) Authenticate(tok string) (*token.Claims, error) {
	claims, err := auth.signer.Parse(tok)
	if err != nil {
		return nil, cerr.Authentication(fmt.Errorf("parsing token: %w", err))
	}
	return claims, nil
}

func (auth *UseCase) session(u *model.User) (*Session, error) {
	tok, err := auth.signer.Sign(u)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &Session{Token: tok, User: u}, nil
}

func isNotFound(err error) bool {
	var categorized *cerr.Error
	return errors.As(err, &categorized) &&
		categorized.HTTPStatusCode == http.StatusNotFound
}
