// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package authrs realizes the authentication resource, allowing the
// registration and login REST APIs to be accepted and delegated to
// the authentication use cases respectively.
package authrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/authuc"
)

type resource struct {
	auth *authuc.UseCase
}

// Register instantiates a resource adapting the authentication use
// case instance with the relevant REST APIs including:
//  1. POST request to /api/fleetweb/v1/auth/register
//     in order to create an account, and
//  2. POST request to /api/fleetweb/v1/auth/login
//     in order to exchange credentials for a bearer token.
func Register(r *gin.RouterGroup, auth *authuc.UseCase) {
	rs := &resource{auth: auth}
	r.POST("auth/register", rs.RegisterUser)
	r.POST("auth/login", rs.Login)
}

func (rs *resource) RegisterUser(c *gin.Context) {
	in := rs.DserRegisterReq(c)
	if in == nil {
		return
	}
	s, err := rs.auth.Register(c, *in)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (rs *resource) Login(c *gin.Context) {
	req := rs.DserLoginReq(c)
	if req == nil {
		return
	}
	s, err := rs.auth.Login(c, req.Email, req.Password)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
