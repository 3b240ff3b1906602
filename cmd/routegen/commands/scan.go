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

	"github.com/spf13/cobra"

	"github.com/bartekus/routegen/cmd/routegen/internal/clierr"
	"github.com/bartekus/routegen/internal/scanner"
	"github.com/bartekus/routegen/pkg/routing"
)

func newScanCmd() *cobra.Command {
	var (
		dir        string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Discover page templates and report their segment analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return clierr.Wrap(2, "loading config", err)
			}

			root := dir
			if root == "" {
				root = cfg.Templates.Root
			}

			files, err := scanner.New(root).TemplateFiles(cfg.Templates.Extensions)
			if err != nil {
				return clierr.Wrap(1, "scanning templates", err)
			}

			out := cmd.OutOrStdout()
			malformed := 0
			for _, file := range files {
				pattern, err := routing.Analyze(file)
				if err != nil {
					malformed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", file, err)
					continue
				}
				fmt.Fprintf(out, "%s -> /%s (%d segments)\n", file, pattern.Stripped, len(pattern.Segments))
			}

			if malformed > 0 {
				return clierr.Newf(2, "%d of %d templates are malformed", malformed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "pages root to scan (defaults to the configured templates root)")
	cmd.Flags().StringVar(&configPath, "config", "", "project config file")

	return cmd
}
