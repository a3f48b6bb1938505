// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/neurofleetx/fleetweb/pkg/adapter/config"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/alertsrp"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/bookingsrp"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/maintenancerp"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/metricsrp"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/telemetryrp"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/usersrp"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/neurofleetx/fleetweb/pkg/adapter/hash/scram"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/airs"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/authrs"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/bookingsrs"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/dashboardrs"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/emergencyrs"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/maintenancers"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/systemrs"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/telemetryrs"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/vehiclesrs"
	"github.com/neurofleetx/fleetweb/pkg/core/repo"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/authuc"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/dashuc"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/fleetuc"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/monitoruc"
)

// Register instantiates relevant repositories and use cases based on
// the c configuration settings. The p connections pool is passed to
// the use case instances, so they may acquire/release connections
// and transactions on demand. These connections/transactions will be
// passed to the repositories later in order to run relevant queries on
// them and accomplish those use cases. Each use case package is named
// like fleetuc and each repository package is named like vehiclesrp.
// Register instantiates a series of "resource" structs, from packages
// which are named like vehiclesrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance.
// Possible errors will be returned after possible wrapping.
func Register(
	ctx context.Context, e *gin.Engine, p repo.Pool, c *config.Config,
) error {
	vehiclesRepo := vehiclesrp.New()
	bookingsRepo := bookingsrp.New()
	telemetryRepo := telemetryrp.New()
	maintenanceRepo := maintenancerp.New()
	alertsRepo := alertsrp.New()
	metricsRepo := metricsrp.New()
	usersRepo := usersrp.New()

	bookings, err := c.NewBookingsUseCase(p, bookingsRepo, vehiclesRepo)
	if err != nil {
		return fmt.Errorf("creating bookings use case: %w", err)
	}
	fleet, err := fleetuc.New(p, vehiclesRepo)
	if err != nil {
		return fmt.Errorf("creating fleet use case: %w", err)
	}
	monitor, err := monitoruc.New(
		p, telemetryRepo, maintenanceRepo, alertsRepo,
	)
	if err != nil {
		return fmt.Errorf("creating monitoring use case: %w", err)
	}
	dash, err := dashuc.New(p, vehiclesRepo, bookingsRepo, metricsRepo)
	if err != nil {
		return fmt.Errorf("creating dashboard use case: %w", err)
	}
	signer, err := c.Auth.NewTokenSigner()
	if err != nil {
		return fmt.Errorf("creating token signer: %w", err)
	}
	auth, err := authuc.New(
		p, usersRepo, scram.SHA256(), signer,
		c.NewAuthUseCaseOptions()...,
	)
	if err != nil {
		return fmt.Errorf("creating auth use case: %w", err)
	}

	r := e.Group("/api/fleetweb/v1")
	vehiclesrs.Register(r, fleet)
	bookingsrs.Register(r, bookings)
	telemetryrs.Register(r, monitor)
	maintenancers.Register(r, monitor)
	emergencyrs.Register(r, monitor)
	dashboardrs.Register(r, dash)
	airs.Register(r, dash)
	systemrs.Register(r, dash)
	authrs.Register(r, auth)
	return nil
}
