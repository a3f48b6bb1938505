// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package systemrs realizes the system resource, exposing the system
// health snapshot and the traffic analysis report.
package systemrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/dashuc"
)

type resource struct {
	dash *dashuc.UseCase
}

// Register instantiates a resource adapting the dashboard use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/fleetweb/v1/system/health
//     in order to fetch the latest system health snapshot, and
//  2. GET request to /api/fleetweb/v1/system/traffic/analysis
//     in order to fetch the traffic analysis report.
func Register(r *gin.RouterGroup, dash *dashuc.UseCase) {
	rs := &resource{dash: dash}
	r.GET("system/health", rs.Health)
	r.GET("system/traffic/analysis", rs.Traffic)
}

func (rs *resource) Health(c *gin.Context) {
	h, err := rs.dash.SystemHealth(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (rs *resource) Traffic(c *gin.Context) {
	c.JSON(http.StatusOK, rs.dash.TrafficAnalysis(c))
}
