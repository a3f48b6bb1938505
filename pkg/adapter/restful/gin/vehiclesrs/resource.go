// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehiclesrs realizes the vehicles resource, allowing the
// fleet manipulation REST APIs to be accepted and delegated to the
// vehicles use cases respectively.
package vehiclesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/fleetuc"
)

type resource struct {
	fleet *fleetuc.UseCase
}

// Register instantiates a resource adapting the vehicles use case
// instance with the relevant REST APIs including:
//  1. GET/POST requests to /api/fleetweb/v1/vehicles
//     in order to list the fleet or onboard a vehicle,
//  2. GET/PUT/DELETE requests to /api/fleetweb/v1/vehicles/:vid, and
//  3. GET requests to the available and driver/:did collections.
func Register(r *gin.RouterGroup, fleet *fleetuc.UseCase) {
	rs := &resource{fleet: fleet}
	r.GET("vehicles", rs.ListVehicles)
	r.POST("vehicles", rs.CreateVehicle)
	r.GET("vehicles/available", rs.ListAvailableVehicles)
	r.GET("vehicles/driver/:did", rs.ListDriverVehicles)
	r.GET("vehicles/:vid", rs.GetVehicle)
	r.PUT("vehicles/:vid", rs.UpdateVehicle)
	r.DELETE("vehicles/:vid", rs.DeleteVehicle)
}

func (rs *resource) ListVehicles(c *gin.Context) {
	vs, err := rs.fleet.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, vs)
}

func (rs *resource) CreateVehicle(c *gin.Context) {
	in := rs.DserCreateReq(c)
	if in == nil {
		return
	}
	v, err := rs.fleet.Create(c, *in)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (rs *resource) ListAvailableVehicles(c *gin.Context) {
	vs, err := rs.fleet.ListAvailable(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, vs)
}

func (rs *resource) ListDriverVehicles(c *gin.Context) {
	vs, err := rs.fleet.ListByDriver(c, c.Param("did"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, vs)
}

func (rs *resource) GetVehicle(c *gin.Context) {
	v, err := rs.fleet.Get(c, c.Param("vid"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (rs *resource) UpdateVehicle(c *gin.Context) {
	in := rs.DserUpdateReq(c)
	if in == nil {
		return
	}
	v, err := rs.fleet.Update(c, c.Param("vid"), *in)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (rs *resource) DeleteVehicle(c *gin.Context) {
	if err := rs.fleet.Delete(c, c.Param("vid")); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
