// Copyright (c) 2025 NeuroFleetX contributors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import "github.com/spf13/cobra"

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For fresh installation, the init sub-command creates the required
tables and fills them with the demo data records.`,
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
