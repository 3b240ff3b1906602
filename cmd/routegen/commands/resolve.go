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
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bartekus/routegen/cmd/routegen/internal/clierr"
	"github.com/bartekus/routegen/internal/render"
	"github.com/bartekus/routegen/pkg/record"
	"github.com/bartekus/routegen/pkg/routing"
)

func newResolveCmd() *cobra.Command {
	var (
		template    string
		recordsPath string
		configPath  string
		format      string
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a path template against a file of data records",
		Long:  "Resolve analyzes the template once, then resolves it for every record in the YAML records file. Unresolved records are reported on stderr and the command exits non-zero.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return clierr.Wrap(2, "loading config", err)
			}

			pattern, err := routing.Analyze(template)
			if err != nil {
				return clierr.Wrap(2, "analyzing template", err)
			}

			records, err := loadRecords(recordsPath)
			if err != nil {
				return clierr.Wrap(2, "loading records", err)
			}

			resolver := routing.NewResolver(cfg.SlugOptions(), routing.WriterReporter{Out: cmd.ErrOrStderr()})
			resolver.CollectionKey = cfg.CollectionKey

			var rows [][]string
			var paths []string
			failures := 0
			for i, rec := range records {
				path, err := resolver.Resolve(pattern, rec)
				if err != nil {
					failures++
					rows = append(rows, []string{strconv.Itoa(i), "(unresolved)"})
					continue
				}
				paths = append(paths, path)
				rows = append(rows, []string{strconv.Itoa(i), path})
			}

			var output string
			switch format {
			case "paths":
				output = strings.Join(paths, "\n")
				if output != "" {
					output += "\n"
				}
			case "table":
				output = render.Table([]string{"Record", "Path"}, rows)
			default:
				return clierr.Newf(2, "unknown format %q (want paths or table)", format)
			}

			if outPath != "" {
				if err := render.AtomicWrite(outPath, []byte(output)); err != nil {
					return clierr.Wrap(1, "writing output", err)
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), output)
			}

			if failures > 0 {
				return clierr.Newf(2, "%d of %d records failed to resolve", failures, len(records))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "path template, e.g. 'products/{Product.name}.js'")
	cmd.Flags().StringVar(&recordsPath, "records", "", "YAML file holding a list of records")
	cmd.Flags().StringVar(&configPath, "config", "", "project config file")
	cmd.Flags().StringVar(&format, "format", "paths", "output format: paths or table")
	cmd.Flags().StringVar(&outPath, "out", "", "write output to this file instead of stdout")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("records")

	return cmd
}

// loadRecords decodes a YAML file holding a top-level sequence of records.
func loadRecords(path string) ([]record.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	var raw []any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse records YAML: %w", err)
	}

	records := make([]record.Value, 0, len(raw))
	for _, item := range raw {
		records = append(records, record.FromAny(item))
	}
	return records, nil
}
