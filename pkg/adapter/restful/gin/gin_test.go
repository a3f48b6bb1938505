// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/goccy/go-json"
	"github.com/neurofleetx/fleetweb/internal/test/dbcontainer"
	"github.com/neurofleetx/fleetweb/pkg/adapter/config"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/seed"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/routes"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/neurofleetx/fleetweb/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const base = "/api/fleetweb/v1"

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pg   *sqltestutil.PostgresContainer
	Pool *postgres.Pool
	Gin  *gin.Engine
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	err := igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			return seed.Migrate(ctx, c)
		},
	)
	igts.Require().NoError(err, "failed to create schema contents")

	igts.Gin, err = registerTestRoutes(igts.Ctx, igts.Pool)
	igts.Require().NoError(err, "failed to register Gin routes")
}

// registerTestRoutes builds a Gin engine with all routes registered
// over the given pool, using a fare band of [100, 101) so completed
// bookings obtain a predictable fare.
func registerTestRoutes(
	ctx context.Context, pool *postgres.Pool,
) (*gin.Engine, error) {
	fareMin, fareMax := 100.0, 101.0
	c := &config.Config{
		Database: config.Database{
			Host: "localhost",
			Port: 5432,
			Name: "fleetweb",
			User: "fleetweb",
		},
		Auth: config.Auth{
			TokenSecret: "integration-test-secret",
		},
		Usecases: config.Usecases{
			Bookings: config.Bookings{
				FareMin: &fareMin,
				FareMax: &fareMax,
			},
		},
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, err
	}
	e := gin.New(gin.Logger(), gin.Recovery())
	if err := routes.Register(ctx, e, pool, c); err != nil {
		return nil, err
	}
	return e, nil
}

func jsonBody(igts *IntegrationGinTestSuite, v any) io.Reader {
	b, err := json.Marshal(v)
	igts.Require().NoError(err, "cannot marshal request body")
	return bytes.NewReader(b)
}

func (igts *IntegrationGinTestSuite) sendReqRecvResp(
	method, path string, body io.Reader, res any,
) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, base+path, body)
	igts.Require().NoError(err, "cannot create %s request", method)
	req.Header.Add("Content-Type", "application/json")
	igts.Gin.ServeHTTP(w, req)
	if res != nil {
		b := w.Body.Bytes()
		igts.NoError(json.Unmarshal(b, res), "body is not json: %s", b)
	}
	return w
}

func (igts *IntegrationGinTestSuite) createVehicle(
	carModel, plate string,
) *model.Vehicle {
	v := &model.Vehicle{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "/vehicles",
		jsonBody(igts, map[string]any{
			"model":        carModel,
			"type":         "sedan",
			"licensePlate": plate,
		}),
		v,
	)
	igts.Require().Equal(201, w.Code, "vehicle creation must succeed")
	igts.Require().NotEmpty(v.ID, "created vehicle must obtain an id")
	return v
}

func (igts *IntegrationGinTestSuite) createBooking(
	customerID string,
) *model.Booking {
	b := &model.Booking{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "/bookings",
		jsonBody(igts, map[string]any{
			"customerId":   customerID,
			"customerName": "Test Customer",
			"pickup": map[string]any{
				"lat": 17.44, "lng": 78.34, "address": "Hitech City",
			},
			"destination": map[string]any{
				"lat": 17.38, "lng": 78.48, "address": "Charminar",
			},
			"scheduledTime": time.Now().Format(time.RFC3339),
		}),
		b,
	)
	igts.Require().Equal(201, w.Code, "booking creation must succeed")
	igts.Require().NotEmpty(b.ID, "created booking must obtain an id")
	return b
}

func (igts *IntegrationGinTestSuite) TestBookingLifecycle() {
	v := igts.createVehicle("Test Sedan", "TS09ZZ0001")
	igts.Equal(model.VehicleAvailable, v.Status)

	b := igts.createBooking("CU-100")
	igts.Equal(model.BookingPending, b.Status)
	igts.Nil(b.VehicleID)
	igts.Nil(b.Fare)

	res := &model.Booking{}
	w := igts.sendReqRecvResp(
		http.MethodPut, "/bookings/"+b.ID+"/assign",
		jsonBody(igts, map[string]any{
			"vehicleId": v.ID, "driverId": "DR-1",
		}),
		res,
	)
	igts.Equal(200, w.Code)
	igts.Equal(model.BookingAssigned, res.Status)
	igts.Require().NotNil(res.VehicleID)
	igts.Equal(v.ID, *res.VehicleID)
	igts.Require().NotNil(res.DriverID)
	igts.Equal("DR-1", *res.DriverID)

	busy := &model.Vehicle{}
	w = igts.sendReqRecvResp(
		http.MethodGet, "/vehicles/"+v.ID, nil, busy,
	)
	igts.Equal(200, w.Code)
	igts.Equal(
		model.VehicleActive, busy.Status,
		"assignment must activate the vehicle",
	)

	// the same vehicle may not serve a second active booking
	b2 := igts.createBooking("CU-101")
	conflict := &struct{ Detail string }{}
	w = igts.sendReqRecvResp(
		http.MethodPut, "/bookings/"+b2.ID+"/assign",
		jsonBody(igts, map[string]any{
			"vehicleId": v.ID, "driverId": "DR-2",
		}),
		conflict,
	)
	igts.Equal(409, w.Code)
	igts.Contains(conflict.Detail, "already serves an active booking")

	w = igts.sendReqRecvResp(
		http.MethodPut, "/bookings/"+b.ID+"/status",
		jsonBody(igts, map[string]any{"status": "in_progress"}),
		res,
	)
	igts.Equal(200, w.Code)
	igts.Equal(model.BookingInProgress, res.Status)

	w = igts.sendReqRecvResp(
		http.MethodPut, "/bookings/"+b.ID+"/status",
		jsonBody(igts, map[string]any{"status": "completed"}),
		res,
	)
	igts.Equal(200, w.Code)
	igts.Equal(model.BookingCompleted, res.Status)
	igts.Require().NotNil(res.Fare, "completion must record a fare")
	igts.GreaterOrEqual(*res.Fare, 100.0)
	igts.Less(*res.Fare, 101.0)
	igts.NotNil(res.CompletedTime, "completion must record a time")

	released := &model.Vehicle{}
	w = igts.sendReqRecvResp(
		http.MethodGet, "/vehicles/"+v.ID, nil, released,
	)
	igts.Equal(200, w.Code)
	igts.Equal(
		model.VehicleAvailable, released.Status,
		"completion must release the vehicle",
	)
	igts.Nil(released.DriverID)

	// completed is terminal
	detail := &struct{ Detail string }{}
	w = igts.sendReqRecvResp(
		http.MethodPut, "/bookings/"+b.ID+"/status",
		jsonBody(igts, map[string]any{"status": "cancelled"}),
		detail,
	)
	igts.Equal(400, w.Code)
	igts.Contains(detail.Detail, "may not move from completed")
}

func (igts *IntegrationGinTestSuite) TestBookingBadRequest() {
	for _, tc := range []struct {
		name    string
		body    map[string]any
		errPart string
	}{
		{
			name:    "no customer",
			body:    map[string]any{},
			errPart: "customer id is required",
		},
		{
			name: "no pickup",
			body: map[string]any{
				"customerId": "CU-1",
				"destination": map[string]any{
					"lat": 17.38, "lng": 78.48,
				},
			},
			errPart: "pickup coordinates are required",
		},
		{
			name: "no destination",
			body: map[string]any{
				"customerId": "CU-1",
				"pickup": map[string]any{
					"lat": 17.44, "lng": 78.34,
				},
			},
			errPart: "destination coordinates are required",
		},
	} {
		igts.Run(tc.name, func() {
			res := &struct{ Detail string }{}
			w := igts.sendReqRecvResp(
				http.MethodPost, "/bookings",
				jsonBody(igts, tc.body), res,
			)
			igts.Equal(400, w.Code)
			igts.Contains(res.Detail, tc.errPart)
		})
	}
}

func (igts *IntegrationGinTestSuite) TestBookingBadStatus() {
	b := igts.createBooking("CU-102")
	res := &struct {
		Status []string
	}{}
	w := igts.sendReqRecvResp(
		http.MethodPut, "/bookings/"+b.ID+"/status",
		jsonBody(igts, map[string]any{"status": "parked"}),
		res,
	)
	igts.Equal(400, w.Code)
	igts.Require().Equal(1, len(res.Status), "wrong status errors")
	igts.Contains(res.Status[0], "unknown booking status")

	// the status field travels in the JSON body, not the query string
	w = igts.sendReqRecvResp(
		http.MethodPut,
		"/bookings/"+b.ID+"/status?status=assigned",
		jsonBody(igts, map[string]any{}),
		res,
	)
	igts.Equal(400, w.Code)
	igts.Require().Equal(1, len(res.Status), "wrong status errors")
	igts.Contains(res.Status[0], "'required' tag")
}

func (igts *IntegrationGinTestSuite) TestNotFound() {
	for _, tc := range []struct {
		name, method, path string
	}{
		{name: "vehicle", method: http.MethodGet, path: "/vehicles/VH-MISSING"},
		{name: "booking", method: http.MethodGet, path: "/bookings/BK-MISSING"},
	} {
		igts.Run(tc.name, func() {
			res := &struct{ Detail string }{}
			w := igts.sendReqRecvResp(tc.method, tc.path, nil, res)
			igts.Equal(404, w.Code)
			igts.Equal(
				"expected one row, but got 0", res.Detail,
				"wrong detail",
			)
		})
	}
}

func (igts *IntegrationGinTestSuite) TestAuthFlow() {
	session := &struct {
		Token string
		User  model.User
	}{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "/auth/register",
		jsonBody(igts, map[string]any{
			"username": "itest",
			"email":    "itest@example.com",
			"password": "itest-pass",
			"role":     "driver",
		}),
		session,
	)
	igts.Require().Equal(201, w.Code, "registration must succeed")
	igts.NotEmpty(session.Token, "registration must mint a token")
	igts.Equal("itest", session.User.Username)
	igts.Equal(model.RoleDriver, session.User.Role)

	// a taken username is rejected
	conflict := &struct{ Detail string }{}
	w = igts.sendReqRecvResp(
		http.MethodPost, "/auth/register",
		jsonBody(igts, map[string]any{
			"username": "itest",
			"email":    "other@example.com",
			"password": "other-pass",
		}),
		conflict,
	)
	igts.Equal(409, w.Code)

	session.Token = ""
	w = igts.sendReqRecvResp(
		http.MethodPost, "/auth/login",
		jsonBody(igts, map[string]any{
			"email":    "itest@example.com",
			"password": "itest-pass",
		}),
		session,
	)
	igts.Equal(200, w.Code)
	igts.NotEmpty(session.Token, "login must mint a token")

	denied := &struct{ Detail string }{}
	w = igts.sendReqRecvResp(
		http.MethodPost, "/auth/login",
		jsonBody(igts, map[string]any{
			"email":    "itest@example.com",
			"password": "wrong-pass",
		}),
		denied,
	)
	igts.Equal(401, w.Code)
	igts.Equal("invalid credentials", denied.Detail)
}

func (igts *IntegrationGinTestSuite) TestTelemetry() {
	v := igts.createVehicle("Telemetry Sedan", "TS09ZZ0002")

	sample := &model.Telemetry{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "/telemetry",
		jsonBody(igts, map[string]any{
			"vehicleId":    v.ID,
			"lat":          17.44,
			"lng":          78.34,
			"speed":        42,
			"fuel":         80,
			"engineHealth": 95,
			"brakeHealth":  90,
			"tireHealth":   85,
		}),
		sample,
	)
	igts.Require().Equal(201, w.Code, "ingestion must succeed")
	igts.Equal(v.ID, sample.VehicleID)

	history := &[]model.Telemetry{}
	w = igts.sendReqRecvResp(
		http.MethodGet, "/telemetry/vehicle/"+v.ID, nil, history,
	)
	igts.Equal(200, w.Code)
	igts.Require().NotEmpty(*history, "history must contain the sample")
	igts.Equal(42, (*history)[0].Speed)

	live := &[]model.Telemetry{}
	w = igts.sendReqRecvResp(
		http.MethodGet, "/telemetry/live", nil, live,
	)
	igts.Equal(200, w.Code)
	var found bool
	for _, s := range *live {
		if s.VehicleID == v.ID {
			found = true
		}
	}
	igts.True(found, "live view must cover the reporting vehicle")
}

func (igts *IntegrationGinTestSuite) getStats() *model.DashboardStats {
	st := &model.DashboardStats{}
	w := igts.sendReqRecvResp(
		http.MethodGet, "/dashboard/stats", nil, st,
	)
	igts.Require().Equal(200, w.Code, "stats query must succeed")
	return st
}

// rideThrough drives a fresh booking of the given customer through
// assignment and completion on the given vehicle, returning the
// completed booking.
func (igts *IntegrationGinTestSuite) rideThrough(
	v *model.Vehicle, customerID, driverID string,
) *model.Booking {
	b := igts.createBooking(customerID)
	res := &model.Booking{}
	w := igts.sendReqRecvResp(
		http.MethodPut, "/bookings/"+b.ID+"/assign",
		jsonBody(igts, map[string]any{
			"vehicleId": v.ID, "driverId": driverID,
		}),
		res,
	)
	igts.Require().Equal(200, w.Code, "assignment must succeed")
	for _, status := range []string{"in_progress", "completed"} {
		w = igts.sendReqRecvResp(
			http.MethodPut, "/bookings/"+b.ID+"/status",
			jsonBody(igts, map[string]any{"status": status}),
			res,
		)
		igts.Require().Equal(200, w.Code, "status update must succeed")
	}
	igts.Require().NotNil(res.Fare, "completion must record a fare")
	return res
}

func (igts *IntegrationGinTestSuite) TestDashboardStats() {
	before := igts.getStats()

	v1 := igts.createVehicle("Stats Sedan", "TS09ZZ0003")
	v2 := igts.createVehicle("Stats Hatchback", "TS09ZZ0004")
	b1 := igts.rideThrough(v1, "CU-200", "DR-20")
	b2 := igts.rideThrough(v2, "CU-201", "DR-21")

	after := igts.getStats()
	igts.Equal(before.TotalVehicles+2, after.TotalVehicles)
	igts.Equal(
		before.CurrentBookings, after.CurrentBookings,
		"completed bookings must not count as active",
	)
	igts.InDelta(
		before.TodayRevenue+*b1.Fare+*b2.Fare,
		after.TodayRevenue, 1e-9,
		"both fares were earned today",
	)

	// a fare completed before today's midnight leaves the window
	yesterday := time.Now().AddDate(0, 0, -1)
	err := igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			count, err := c.Exec(
				ctx,
				"UPDATE bookings SET completed_time=$1 WHERE bid=$2",
				yesterday, b2.ID,
			)
			igts.Equal(int64(1), count, "tried to back-date one booking")
			return err
		},
	)
	igts.Require().NoError(err, "failed to back-date the booking")

	backdated := igts.getStats()
	igts.InDelta(
		before.TodayRevenue+*b1.Fare,
		backdated.TodayRevenue, 1e-9,
		"yesterday's fare must not count towards today's revenue",
	)
}

func TestDashboardStatsEmptyStore(t *testing.T) {
	ctx := context.Background()
	_, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	err := pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return seed.Migrate(ctx, c)
	})
	require.NoError(t, err, "failed to create schema contents")
	e, err := registerTestRoutes(ctx, pool)
	require.NoError(t, err, "failed to register Gin routes")

	w := httptest.NewRecorder()
	req, err := http.NewRequest(
		http.MethodGet, base+"/dashboard/stats", nil,
	)
	require.NoError(t, err, "cannot create GET request")
	e.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	st := &model.DashboardStats{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), st))
	assert.Equal(
		t, model.DashboardStats{FuelEfficiency: 12.5}, *st,
		"an empty store reports zero counters and the fallback efficiency",
	)
}

func (igts *IntegrationGinTestSuite) TestReports() {
	for _, tc := range []struct {
		name, path string
	}{
		{name: "dashboard stats", path: "/dashboard/stats"},
		{name: "ai metrics", path: "/ai/metrics"},
		{name: "ai tropical", path: "/ai/tropical"},
		{name: "system health", path: "/system/health"},
		{name: "traffic analysis", path: "/system/traffic/analysis"},
		{name: "maintenance forecast", path: "/maintenance/predict"},
		{name: "emergency routes", path: "/emergency/routes"},
	} {
		igts.Run(tc.name, func() {
			var res any
			w := igts.sendReqRecvResp(
				http.MethodGet, tc.path, nil, &res,
			)
			igts.Equal(200, w.Code)
			igts.NotNil(res, "report body must be json")
		})
	}
}
