// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "fmt"

// UserRole enumerates the account roles of the fleet portal.
type UserRole string

// Supported user roles.
const (
	RoleAdmin     UserRole = "admin"
	RoleDriver    UserRole = "driver"
	RoleCustomer  UserRole = "customer"
	RolePassenger UserRole = "passenger"
)

// ParseUserRole converts its string argument to a UserRole, returning
// an error for unknown values.
func ParseUserRole(r string) (UserRole, error) {
	switch ur := UserRole(r); ur {
	case RoleAdmin, RoleDriver, RoleCustomer, RolePassenger:
		return ur, nil
	default:
		return "", fmt.Errorf("unknown user role: %q", r)
	}
}

// User is a portal account. PasswordHash holds a SCRAM formatted hash
// string and never leaves the backend; resources serialize users
// without it.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
}
