// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package airs realizes the AI resource, exposing the AI engine
// metrics snapshot.
package airs

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
//  1. GET request to /api/fleetweb/v1/ai/metrics
//     in order to fetch the latest AI engine metrics snapshot, and
//  2. GET request to /api/fleetweb/v1/ai/tropical
//     in order to fetch its tropical-route widget flags only.
func Register(r *gin.RouterGroup, dash *dashuc.UseCase) {
	rs := &resource{dash: dash}
	r.GET("ai/metrics", rs.Metrics)
	r.GET("ai/tropical", rs.Tropical)
}

func (rs *resource) Metrics(c *gin.Context) {
	m, err := rs.dash.AIMetrics(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (rs *resource) Tropical(c *gin.Context) {
	tr, err := rs.dash.Tropical(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, tr)
}
