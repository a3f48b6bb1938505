// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package telemetryrs realizes the telemetry resource, exposing the
// live fleet view and the per-vehicle sample history, in addition to
// the ingestion endpoint which vehicles (or a simulator) post their
// sensor readings to.
package telemetryrs

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/monitoruc"
)

type resource struct {
	monitor *monitoruc.UseCase
}

// Register instantiates a resource adapting the fleet monitoring use
// case instance with the relevant REST APIs including:
//  1. GET request to /api/fleetweb/v1/telemetry/live
//     in order to fetch the latest sample of every vehicle,
//  2. GET request to /api/fleetweb/v1/telemetry/vehicle/:vid
//     in order to fetch the sample history of one vehicle, and
//  3. POST request to /api/fleetweb/v1/telemetry
//     in order to ingest one sample.
func Register(r *gin.RouterGroup, monitor *monitoruc.UseCase) {
	rs := &resource{monitor: monitor}
	r.GET("telemetry/live", rs.LiveTelemetry)
	r.GET("telemetry/vehicle/:vid", rs.VehicleTelemetry)
	r.POST("telemetry", rs.IngestTelemetry)
}

func (rs *resource) LiveTelemetry(c *gin.Context) {
	ts, err := rs.monitor.Live(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

func (rs *resource) VehicleTelemetry(c *gin.Context) {
	ts, err := rs.monitor.VehicleTelemetry(c, c.Param("vid"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

type rawSampleReq struct {
	VehicleID    string    `json:"vehicleId" binding:"required"`
	Timestamp    time.Time `json:"timestamp"`
	Lat          float64   `json:"lat" binding:"omitempty,latitude"`
	Lng          float64   `json:"lng" binding:"omitempty,longitude"`
	Speed        int       `json:"speed" binding:"omitempty,min=0"`
	Fuel         int       `json:"fuel" binding:"omitempty,min=0,max=100"`
	EngineHealth int       `json:"engineHealth" binding:"omitempty,min=0,max=100"`
	BrakeHealth  int       `json:"brakeHealth" binding:"omitempty,min=0,max=100"`
	TireHealth   int       `json:"tireHealth" binding:"omitempty,min=0,max=100"`
}

func (rs *resource) IngestTelemetry(c *gin.Context) {
	req := &rawSampleReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	t := &model.Telemetry{
		VehicleID:    req.VehicleID,
		Timestamp:    req.Timestamp,
		Lat:          req.Lat,
		Lng:          req.Lng,
		Speed:        req.Speed,
		Fuel:         req.Fuel,
		EngineHealth: req.EngineHealth,
		BrakeHealth:  req.BrakeHealth,
		TireHealth:   req.TireHealth,
	}
	if err := rs.monitor.Ingest(c, t); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}
