// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package emergencyrs realizes the emergency resource, exposing the
// emergency alerts and the demo corridors.
package emergencyrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/monitoruc"
)

type resource struct {
	monitor *monitoruc.UseCase
}

// Register instantiates a resource adapting the fleet monitoring use
// case instance with the relevant REST APIs including:
//  1. GET request to /api/fleetweb/v1/emergency/alerts
//     in order to list all alerts,
//  2. GET request to /api/fleetweb/v1/emergency/alerts/active
//     in order to list the still active alerts, and
//  3. GET request to /api/fleetweb/v1/emergency/routes
//     in order to fetch the emergency corridors.
func Register(r *gin.RouterGroup, monitor *monitoruc.UseCase) {
	rs := &resource{monitor: monitor}
	r.GET("emergency/alerts", rs.ListAlerts)
	r.GET("emergency/alerts/active", rs.ListActiveAlerts)
	r.GET("emergency/routes", rs.ListRoutes)
}

func (rs *resource) ListAlerts(c *gin.Context) {
	as, err := rs.monitor.Alerts(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, as)
}

func (rs *resource) ListActiveAlerts(c *gin.Context) {
	as, err := rs.monitor.ActiveAlerts(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, as)
}

func (rs *resource) ListRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, rs.monitor.Routes(c))
}
