// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package bookinguc contains the booking lifecycle UseCase. It owns
// the booking status state machine and the vehicle assignment workflow
// which touch the bookings and vehicles repositories inside a single
// transaction per operation, so a conflict or crash can never leave
// one side updated without the other.
package bookinguc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/neurofleetx/fleetweb/pkg/core/cerr"
	"github.com/neurofleetx/fleetweb/pkg/core/log"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/neurofleetx/fleetweb/pkg/core/repo"
)

// UseCase represents the booking lifecycle use case. It holds a
// database connection pool and the bookings and vehicles repository
// instances (to be guided with the DB pool), in addition to the
// injected identifier generation, clock, and fare pricing strategies.
type UseCase struct {
	pool       repo.Pool
	bookingsrp repo.Bookings
	vehiclesrp repo.Vehicles

	newID func() string
	now   func() time.Time
	fare  func() float64
}

// New instantiates a booking lifecycle use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(
	p repo.Pool, b repo.Bookings, v repo.Vehicles, opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{pool: p, bookingsrp: b, vehiclesrp: v}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.newID == nil {
		uc.newID = bookingID
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.fare == nil {
		uc.fare = uniformPricer(defaultFareMin, defaultFareMax)
	}
	return uc, nil
}

// CreateInput carries the booking creation arguments.
type CreateInput struct {
	CustomerID    string
	CustomerName  string
	Pickup        model.Location
	Destination   model.Location
	ScheduledTime time.Time
}

// Create use case registers a new booking in the pending status with
// a freshly generated identifier and no vehicle or driver. It fails
// with a bad-request error when the customer or the pickup or
// destination coordinates are missing.
func (bk *UseCase) Create(ctx context.Context, in CreateInput) (
	b *model.Booking, err error,
) {
	switch {
	case in.CustomerID == "":
		return nil, cerr.BadRequest(errors.New("customer id is required"))
	case in.Pickup.IsZero():
		return nil, cerr.BadRequest(errors.New("pickup coordinates are required"))
	case in.Destination.IsZero():
		return nil, cerr.BadRequest(errors.New("destination coordinates are required"))
	}
	b = &model.Booking{
		ID:            bk.newID(),
		CustomerID:    in.CustomerID,
		CustomerName:  in.CustomerName,
		Status:        model.BookingPending,
		Pickup:        in.Pickup,
		Destination:   in.Destination,
		ScheduledTime: in.ScheduledTime,
	}
	err = bk.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return bk.bookingsrp.Conn(c).Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "booking created",
		slog.String("booking", b.ID),
		slog.String("customer", b.CustomerID),
	)
	return b, nil
}

// AssignVehicle use case binds the vid vehicle and did driver to the
// bid booking, moving the booking to the assigned status and the
// vehicle to the active status. Both rows are updated in one
// transaction, so either both changes commit or neither does.
// A vehicle which is already referenced by another active booking is
// rejected with a conflict error; re-submitting the same assignment
// is accepted and idempotent.
func (bk *UseCase) AssignVehicle(ctx context.Context, bid, vid, did string) (
	b *model.Booking, err error,
) {
	err = bk.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			bq := bk.bookingsrp.Tx(tx)
			vq := bk.vehiclesrp.Tx(tx)
			b, err = bq.GetByID(ctx, bid)
			if err != nil {
				return err
			}
			if !model.CanTransition(b.Status, model.BookingAssigned) {
				return cerr.BadRequest(fmt.Errorf(
					"booking %s may not move from %s to %s",
					bid, b.Status, model.BookingAssigned,
				))
			}
			if b.VehicleID == nil || *b.VehicleID != vid {
				busy, err := bq.HasActiveForVehicle(ctx, vid)
				if err != nil {
					return err
				}
				if busy {
					return cerr.Conflict(fmt.Errorf(
						"vehicle %s already serves an active booking", vid,
					))
				}
			}
			if _, err := vq.Assign(ctx, vid, did, bk.now()); err != nil {
				return err
			}
			b.VehicleID = &vid
			b.DriverID = &did
			b.Status = model.BookingAssigned
			return bq.Update(ctx, b)
		})
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "vehicle assigned",
		slog.String("booking", bid),
		slog.String("vehicle", vid),
		slog.String("driver", did),
	)
	return b, nil
}

// UpdateStatus use case moves the bid booking to the given target
// status, rejecting transitions which the state machine forbids.
// Submitting the current status again is accepted and leaves the
// booking unchanged. When the booking completes, the completion time
// and a fare are recorded (once) and its vehicle, if any, is released
// back to the available status. A vehicle row which disappeared in the
// meantime is tolerated; the booking update still commits.
func (bk *UseCase) UpdateStatus(
	ctx context.Context, bid string, to model.BookingStatus,
) (b *model.Booking, err error) {
	err = bk.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			bq := bk.bookingsrp.Tx(tx)
			b, err = bq.GetByID(ctx, bid)
			if err != nil {
				return err
			}
			if !model.CanTransition(b.Status, to) {
				return cerr.BadRequest(fmt.Errorf(
					"booking %s may not move from %s to %s",
					bid, b.Status, to,
				))
			}
			b.Status = to
			if to == model.BookingCompleted {
				if b.CompletedTime == nil {
					t := bk.now()
					b.CompletedTime = &t
				}
				if b.Fare == nil {
					f := bk.fare()
					b.Fare = &f
				}
				if b.VehicleID != nil {
					err := bk.releaseVehicle(ctx, tx, *b.VehicleID)
					if err != nil {
						return err
					}
				}
			}
			return bq.Update(ctx, b)
		})
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "booking status updated",
		slog.String("booking", bid),
		slog.String("status", string(to)),
	)
	return b, nil
}

// releaseVehicle puts the vid vehicle back into rotation. A missing
// vehicle row is logged and skipped instead of failing the enclosing
// booking update.
func (bk *UseCase) releaseVehicle(
	ctx context.Context, tx repo.Tx, vid string,
) error {
	_, err := bk.vehiclesrp.Tx(tx).Release(ctx, vid, bk.now())
	if isNotFound(err) {
		log.Warn(ctx, "completed booking references a missing vehicle",
			slog.String("vehicle", vid),
		)
		return nil
	}
	return err
}

// Get use case returns the bid booking.
func (bk *UseCase) Get(ctx context.Context, bid string) (
	b *model.Booking, err error,
) {
	err = bk.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		b, err = bk.bookingsrp.Conn(c).GetByID(ctx, bid)
		return err
	})
	if err != nil {
		b = nil
	}
	return
}

// List use case returns all bookings.
func (bk *UseCase) List(ctx context.Context) (
	bs []model.Booking, err error,
) {
	err = bk.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		bs, err = bk.bookingsrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		bs = nil
	}
	return
}

// ListByCustomer use case returns the bookings of one customer.
func (bk *UseCase) ListByCustomer(ctx context.Context, customerID string) (
	bs []model.Booking, err error,
) {
	err = bk.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		bs, err = bk.bookingsrp.Conn(c).ListByCustomer(ctx, customerID)
		return err
	})
	if err != nil {
		bs = nil
	}
	return
}

// ListByDriver use case returns the bookings of one driver.
func (bk *UseCase) ListByDriver(ctx context.Context, driverID string) (
	bs []model.Booking, err error,
) {
	err = bk.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		bs, err = bk.bookingsrp.Conn(c).ListByDriver(ctx, driverID)
		return err
	})
	if err != nil {
		bs = nil
	}
	return
}

func isNotFound(err error) bool {
	var ce *cerr.Error
	return errors.As(err, &ce) &&
		ce.HTTPStatusCode == http.StatusNotFound
}
