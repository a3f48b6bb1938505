// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres provides the PostgreSQL adapter implementing the
// repo.Pool, repo.Conn, and repo.Tx interfaces on top of the GORM
// framework. Sub-packages implement the repositories of the core
// layer; each one keeps its GORM-annotated row structs unexported and
// exposes a Migrate function so the dbinit use case can create the
// corresponding tables.
package postgres
