// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dashboardrs realizes the dashboard resource, exposing the
// aggregated fleet statistics.
package dashboardrs

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
//  1. GET request to /api/fleetweb/v1/dashboard/stats
//     in order to fetch the aggregated fleet statistics.
func Register(r *gin.RouterGroup, dash *dashuc.UseCase) {
	rs := &resource{dash: dash}
	r.GET("dashboard/stats", rs.Stats)
}

func (rs *resource) Stats(c *gin.Context) {
	st, err := rs.dash.Stats(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
