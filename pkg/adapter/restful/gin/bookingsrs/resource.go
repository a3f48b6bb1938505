// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package bookingsrs realizes the bookings resource, allowing the
// booking lifecycle REST APIs to be accepted and delegated to the
// booking use cases respectively.
package bookingsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/bookinguc"
)

type resource struct {
	bookings *bookinguc.UseCase
}

// Register instantiates a resource adapting the booking lifecycle use
// case instance with the relevant REST APIs including:
//  1. GET/POST requests to /api/fleetweb/v1/bookings
//     in order to list bookings or request a new one,
//  2. GET request to /api/fleetweb/v1/bookings/:bid
//     and its customer/:cid and driver/:did sibling collections,
//  3. PUT request to /api/fleetweb/v1/bookings/:bid/assign
//     in order to bind a vehicle and driver pair to a booking, and
//  4. PUT request to /api/fleetweb/v1/bookings/:bid/status
//     in order to move a booking through its lifecycle.
func Register(r *gin.RouterGroup, bookings *bookinguc.UseCase) {
	rs := &resource{bookings: bookings}
	r.GET("bookings", rs.ListBookings)
	r.POST("bookings", rs.CreateBooking)
	r.GET("bookings/:bid", rs.GetBooking)
	r.GET("bookings/customer/:cid", rs.ListCustomerBookings)
	r.GET("bookings/driver/:did", rs.ListDriverBookings)
	r.PUT("bookings/:bid/assign", rs.AssignVehicle)
	r.PUT("bookings/:bid/status", rs.UpdateStatus)
}

func (rs *resource) ListBookings(c *gin.Context) {
	bs, err := rs.bookings.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, bs)
}

func (rs *resource) CreateBooking(c *gin.Context) {
	in := rs.DserCreateReq(c)
	if in == nil {
		return
	}
	b, err := rs.bookings.Create(c, *in)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (rs *resource) GetBooking(c *gin.Context) {
	b, err := rs.bookings.Get(c, c.Param("bid"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (rs *resource) ListCustomerBookings(c *gin.Context) {
	bs, err := rs.bookings.ListByCustomer(c, c.Param("cid"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, bs)
}

func (rs *resource) ListDriverBookings(c *gin.Context) {
	bs, err := rs.bookings.ListByDriver(c, c.Param("did"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, bs)
}

func (rs *resource) AssignVehicle(c *gin.Context) {
	req := rs.DserAssignReq(c)
	if req == nil {
		return
	}
	b, err := rs.bookings.AssignVehicle(
		c, c.Param("bid"), req.VehicleID, req.DriverID,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (rs *resource) UpdateStatus(c *gin.Context) {
	status := rs.DserStatusReq(c)
	if status == nil {
		return
	}
	b, err := rs.bookings.UpdateStatus(c, c.Param("bid"), *status)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
