// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fleetuc contains the vehicles UseCase which supports the
// fleet onboarding and bookkeeping use cases: registering a vehicle,
// reading the fleet back in various slices, patching a vehicle record,
// and removing a vehicle from the fleet.
package fleetuc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neurofleetx/fleetweb/pkg/core/cerr"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/neurofleetx/fleetweb/pkg/core/repo"
)

// UseCase represents the vehicles use case. It holds a database
// connection pool, the vehicles repository instance (to be guided with
// the DB pool), and the injected identifier and clock strategies.
type UseCase struct {
	pool       repo.Pool
	vehiclesrp repo.Vehicles

	newID func() string
	now   func() time.Time
}

// New instantiates a vehicles use case.
func New(p repo.Pool, v repo.Vehicles, opts ...Option) (*UseCase, error) {
	uc := &UseCase{pool: p, vehiclesrp: v}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.newID == nil {
		uc.newID = vehicleID
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc, nil
}

// CreateInput carries the vehicle onboarding arguments. Optional
// fields fall back to the fleet defaults: the available status, a full
// tank, a perfect health score, zero mileage, and an unspecified
// location at the origin.
type CreateInput struct {
	Model        string
	Type         model.VehicleType
	LicensePlate string
	Status       *model.VehicleStatus
	Location     *model.Location
	Fuel         *int
	Health       *int
	Mileage      *int
	DriverID     *string
}

// UpdateInput carries the vehicle patch arguments; nil fields keep
// their current values.
type UpdateInput struct {
	Status   *model.VehicleStatus
	Fuel     *int
	Health   *int
	DriverID *string
	Location *model.Location
}

// Create use case onboards a new vehicle with a generated identifier.
func (fl *UseCase) Create(ctx context.Context, in CreateInput) (
	v *model.Vehicle, err error,
) {
	switch {
	case in.Model == "":
		return nil, cerr.BadRequest(errors.New("vehicle model is required"))
	case in.LicensePlate == "":
		return nil, cerr.BadRequest(errors.New("license plate is required"))
	}
	v = &model.Vehicle{
		ID:           fl.newID(),
		Model:        in.Model,
		Type:         in.Type,
		Status:       model.VehicleAvailable,
		LicensePlate: in.LicensePlate,
		Location: model.Location{
			Address: "Not specified",
		},
		Fuel:       100,
		Health:     100,
		DriverID:   in.DriverID,
		LastUpdate: fl.now(),
	}
	if in.Status != nil {
		v.Status = *in.Status
	}
	if in.Location != nil {
		v.Location = *in.Location
	}
	if in.Fuel != nil {
		v.Fuel = *in.Fuel
	}
	if in.Health != nil {
		v.Health = *in.Health
	}
	if in.Mileage != nil {
		v.Mileage = *in.Mileage
	}
	err = fl.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return fl.vehiclesrp.Conn(c).Create(ctx, v)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Update use case patches the vid vehicle with the present fields of
// the in argument and refreshes its last-update stamp.
func (fl *UseCase) Update(ctx context.Context, vid string, in UpdateInput) (
	v *model.Vehicle, err error,
) {
	err = fl.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := fl.vehiclesrp.Conn(c)
		v, err = q.GetByID(ctx, vid)
		if err != nil {
			return err
		}
		if in.Status != nil {
			v.Status = *in.Status
		}
		if in.Fuel != nil {
			v.Fuel = *in.Fuel
		}
		if in.Health != nil {
			v.Health = *in.Health
		}
		if in.DriverID != nil {
			v.DriverID = in.DriverID
		}
		if in.Location != nil {
			v.Location = *in.Location
		}
		v.LastUpdate = fl.now()
		return q.Update(ctx, v)
	})
	if err != nil {
		v = nil
	}
	return
}

// Delete use case removes the vid vehicle from the fleet.
func (fl *UseCase) Delete(ctx context.Context, vid string) error {
	return fl.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return fl.vehiclesrp.Conn(c).Delete(ctx, vid)
	})
}

// Get use case returns the vid vehicle.
func (fl *UseCase) Get(ctx context.Context, vid string) (
	v *model.Vehicle, err error,
) {
	err = fl.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		v, err = fl.vehiclesrp.Conn(c).GetByID(ctx, vid)
		return err
	})
	if err != nil {
		v = nil
	}
	return
}

// List use case returns all fleet vehicles.
func (fl *UseCase) List(ctx context.Context) (
	vs []model.Vehicle, err error,
) {
	err = fl.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		vs, err = fl.vehiclesrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		vs = nil
	}
	return
}

// ListAvailable use case returns the vehicles which may be assigned
// to a booking.
func (fl *UseCase) ListAvailable(ctx context.Context) (
	vs []model.Vehicle, err error,
) {
	err = fl.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		vs, err = fl.vehiclesrp.Conn(c).ListByStatus(
			ctx, model.VehicleAvailable,
		)
		return err
	})
	if err != nil {
		vs = nil
	}
	return
}

// ListByDriver use case returns the vehicles of one driver.
func (fl *UseCase) ListByDriver(ctx context.Context, driverID string) (
	vs []model.Vehicle, err error,
) {
	err = fl.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		vs, err = fl.vehiclesrp.Conn(c).ListByDriver(ctx, driverID)
		return err
	})
	if err != nil {
		vs = nil
	}
	return
}
