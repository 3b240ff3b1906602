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
	"github.com/bartekus/routegen/internal/render"
	"github.com/bartekus/routegen/pkg/routing"
)

func newQueryCmd() *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Derive the field-selection shape for a path template",
		Long:  "Query analyzes the template and prints the segments plus the merged field-selection shape an external query builder needs to materialize every instance.",
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := routing.Analyze(template)
			if err != nil {
				return clierr.Wrap(2, "analyzing template", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "template: %s\n", pattern.Template)
			fmt.Fprintf(out, "stripped: %s\n", pattern.Stripped)

			if len(pattern.Segments) == 0 {
				fmt.Fprintln(out, "static page: no dynamic segments")
				return nil
			}

			items := make([]string, 0, len(pattern.Segments))
			for _, seg := range pattern.Segments {
				item := fmt.Sprintf("%s -> %s", seg.Raw, seg.DottedPath())
				if seg.Union != "" {
					item += fmt.Sprintf(" (narrowed to %s)", seg.Union)
				}
				items = append(items, item)
			}
			fmt.Fprint(out, render.List(items))

			fmt.Fprintf(out, "shape: %s\n", routing.BuildShape(pattern.Segments).Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "path template to analyze")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}
