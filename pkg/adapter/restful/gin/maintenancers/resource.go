// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package maintenancers realizes the maintenance resource, exposing
// the service records and the predictive-maintenance forecast.
package maintenancers

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
//  1. GET request to /api/fleetweb/v1/maintenance
//     in order to list all service records,
//  2. GET request to /api/fleetweb/v1/maintenance/vehicle/:vid
//     in order to list the service records of one vehicle, and
//  3. GET request to /api/fleetweb/v1/maintenance/predict
//     in order to fetch the forecast report.
func Register(r *gin.RouterGroup, monitor *monitoruc.UseCase) {
	rs := &resource{monitor: monitor}
	r.GET("maintenance", rs.ListRecords)
	r.GET("maintenance/vehicle/:vid", rs.ListVehicleRecords)
	r.GET("maintenance/predict", rs.Forecast)
}

func (rs *resource) ListRecords(c *gin.Context) {
	ms, err := rs.monitor.Maintenance(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ms)
}

func (rs *resource) ListVehicleRecords(c *gin.Context) {
	ms, err := rs.monitor.VehicleMaintenance(c, c.Param("vid"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ms)
}

func (rs *resource) Forecast(c *gin.Context) {
	c.JSON(http.StatusOK, rs.monitor.Forecast(c))
}
