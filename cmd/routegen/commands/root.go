// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Routegen - Routegen derives concrete URL paths from file-path templates containing bracketed field segments, plus the data-query shapes needed to materialize them.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/routegen/internal/routecfg"
)

// NewRootCmd constructs the routegen root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("ROUTEGEN_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "routegen",
		Short:         "Routegen - collection-route path resolution tooling",
		Long:          "Routegen analyzes file-path templates with bracketed field segments, resolves them against data records, and derives the query shapes needed to materialize them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of routegen",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "routegen version %s\n", version)
		},
	})

	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newQueryCmd())
	cmd.AddCommand(newScanCmd())

	return cmd
}

// loadConfig returns the project config, or the defaults when no --config
// flag was given.
func loadConfig(path string) (routecfg.Config, error) {
	if path == "" {
		return routecfg.Default(), nil
	}
	return routecfg.Load(path)
}
