// SPDX-License-Identifier: AGPL-3.0-or-later
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AtomicWrite writes content to path atomically by writing to a temp file and renaming it.
func AtomicWrite(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, "routegen-tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing content: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("moving temp file to %s: %w", path, err)
	}

	return nil
}

// Table renders a Markdown table.
// It assumes rows are already sorted if determinism is required.
func Table(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")

	b.WriteString("|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	return b.String()
}

// List renders a simple unordered Markdown list.
func List(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(fmt.Sprintf("- %s\n", item))
	}
	return b.String()
}
