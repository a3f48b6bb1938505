// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config loads the YAML configuration file and constructs the
// adapter and use case instances out of its settings. It is preferred
// to implement Config with primitive fields or other structs which are
// defined locally, not models or structs which are defined in lower
// layers, so the configuration file format can be kept intact while
// other layers can change freely.
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neurofleetx/fleetweb/pkg/adapter/auth/jwt"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres"
	"github.com/neurofleetx/fleetweb/pkg/core/repo"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/authuc"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/bookinguc"
	"gopkg.in/yaml.v3"
)

// defaultTokenTTL applies when the auth token-ttl setting is missing.
const defaultTokenTTL = 24 * time.Hour

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases.
type Config struct {
	Database Database // PostgreSQL database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Auth     Auth     // accounts and bearer token settings
	Usecases Usecases // Supported use cases configuration settings
}

// Load reads the YAML configuration file at the given path, decodes it
// into a Config instance, and validates and normalizes its settings.
// Extra items in the file will be ignored and missing items will take
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some zero values with
// their expected default values (if any).
func (c *Config) ValidateAndNormalize() error {
	if err := c.Database.validateAndNormalize(); err != nil {
		return fmt.Errorf("validating database settings: %w", err)
	}
	nil2True(&c.Gin.Logger)
	nil2True(&c.Gin.Recovery)
	if err := c.Auth.validateAndNormalize(); err != nil {
		return fmt.Errorf("validating auth settings: %w", err)
	}
	b := c.Usecases.Bookings
	if (b.FareMin == nil) != (b.FareMax == nil) {
		return errors.New(
			"fare-minimum and fare-maximum must be set together",
		)
	}
	return nil
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `c` settings.
func (c *Config) ConnectionPool(ctx context.Context) (repo.Pool, error) {
	p, err := postgres.NewPool(ctx, c.Database.ConnectionURL())
	if err != nil {
		return nil, fmt.Errorf(
			"connecting to %s:%d/%s: %w",
			c.Database.Host, c.Database.Port, c.Database.Name, err,
		)
	}
	return p, nil
}

// Database contains the PostgreSQL database connection settings.
type Database struct {
	Host     string // domain name or IP address of the DBMS server
	Port     int    // port number of the DBMS server
	Name     string // database name, like fleetweb
	User     string // database role name
	Password string // database role password
}

func (d *Database) validateAndNormalize() error {
	switch {
	case d.Host == "":
		return errors.New("host must be non-empty")
	case d.Port <= 0 || d.Port > 65535:
		return fmt.Errorf("port (%d) is out of range", d.Port)
	case d.Name == "":
		return errors.New("database name must be non-empty")
	case d.User == "":
		return errors.New("user must be non-empty")
	}
	return nil
}

// ConnectionURL returns the database connection URL embedding the
// host, port, role name, database name, and password value, having
// the postgresql scheme.
func (d Database) ConnectionURL() string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	return u.String()
}

// Gin contains the Gin-Gonic instantiation settings.
type Gin struct {
	Logger   *bool // Whether to register the gin.Logger() middleware
	Recovery *bool // Whether to register the gin.Recovery() middleware
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	engine := gin.New()
	engine.Use(middlewares...)
	return engine
}

// Auth contains the accounts and bearer token settings.
type Auth struct {
	// TokenSecret is the HS256 shared secret of the bearer tokens.
	TokenSecret string `yaml:"token-secret"`
	// TokenTTL bounds the bearer tokens lifetime, defaulting to 24h.
	TokenTTL *Duration `yaml:"token-ttl"`
	// HashIters is the SCRAM hash iterations count for the stored
	// password hashes. A missing value leaves the use case default
	// (following the RFC 7677 recommendation) in effect.
	HashIters *int `yaml:"hash-iters"`
}

func (a *Auth) validateAndNormalize() error {
	if a.TokenSecret == "" {
		return errors.New("token-secret must be non-empty")
	}
	if a.TokenTTL == nil {
		d := Duration(defaultTokenTTL)
		a.TokenTTL = &d
	}
	return nil
}

// NewTokenSigner instantiates the JWT signer based on the `a`
// settings.
func (a Auth) NewTokenSigner() (*jwt.Signer, error) {
	return jwt.New(a.TokenSecret, time.Duration(*a.TokenTTL))
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Bookings Bookings // booking lifecycle related settings
}

// Bookings contains the configuration settings for the booking
// lifecycle use cases. Fields are defined as pointers, so it is
// possible to detect if they are or are not initialized and leave the
// use case defaults in effect for the missing ones.
type Bookings struct {
	// FareMin is the inclusive lower bound of the placeholder fare
	// which a completed booking obtains.
	FareMin *float64 `yaml:"fare-minimum"`
	// FareMax is the exclusive upper bound of the placeholder fare.
	FareMax *float64 `yaml:"fare-maximum"`
}

// NewBookingsUseCase instantiates a new booking lifecycle use case
// based on the settings in the c struct.
func (c *Config) NewBookingsUseCase(
	p repo.Pool, b repo.Bookings, v repo.Vehicles,
) (*bookinguc.UseCase, error) {
	opts := make([]bookinguc.Option, 0, 1)
	bc := c.Usecases.Bookings
	if bc.FareMin != nil && bc.FareMax != nil {
		opts = append(
			opts, bookinguc.WithFareBand(*bc.FareMin, *bc.FareMax),
		)
	}
	return bookinguc.New(p, b, v, opts...)
}

// NewAuthUseCaseOptions builds the accounts use case options based on
// the settings in the c struct.
func (c *Config) NewAuthUseCaseOptions() []authuc.Option {
	opts := make([]authuc.Option, 0, 1)
	if c.Auth.HashIters != nil {
		opts = append(opts, authuc.WithHashIterations(*c.Auth.HashIters))
	}
	return opts
}

func nil2True(b **bool) {
	if *b == nil {
		v := true
		*b = &v
	}
}
