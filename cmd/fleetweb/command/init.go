// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/neurofleetx/fleetweb/pkg/adapter/config"
	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres/seed"
	"github.com/neurofleetx/fleetweb/pkg/adapter/hash/scram"
	"github.com/neurofleetx/fleetweb/pkg/core/repo"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize database contents with the demo data",
	Long: `Initialize database contents with the demo data records.
The database connection information are read from the config file.
Tables are created if they were missing and the demo accounts,
vehicles, bookings, alerts, maintenance records, and metrics rows are
inserted. A database which already contains accounts is left intact,
so running init twice is harmless.`,
	RunE: initDB,
	Args: cobra.NoArgs,
}

func initDB(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	err = p.Conn(ctx, func(ctx context.Context, cc repo.Conn) error {
		if err := seed.Migrate(ctx, cc); err != nil {
			return fmt.Errorf("migrating tables: %w", err)
		}
		if err := seed.Seed(ctx, cc, scram.SHA256()); err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("initializing DB: %w", err)
	}
	return nil
}

func init() {
	dbCmd.AddCommand(initCmd)
}
