// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Routegen - Routegen derives concrete URL paths from file-path templates containing bracketed field segments, plus the data-query shapes needed to materialize them.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package routecfg loads and validates the project configuration file.
package routecfg

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/routegen/pkg/routing"
	"github.com/bartekus/routegen/pkg/slug"
)

// Config is the routegen project configuration.
type Config struct {
	Slug          SlugConfig      `yaml:"slug"`
	Templates     TemplatesConfig `yaml:"templates"`
	CollectionKey string          `yaml:"collection_key"`
}

// SlugConfig mirrors slug.Options in YAML form.
type SlugConfig struct {
	Lowercase       bool   `yaml:"lowercase"`
	Separator       string `yaml:"separator"`
	StripDiacritics bool   `yaml:"strip_diacritics"`
}

// TemplatesConfig controls template discovery.
type TemplatesConfig struct {
	Root       string   `yaml:"root"`
	Extensions []string `yaml:"extensions"`
}

// Default returns the canonical configuration.
func Default() Config {
	return Config{
		Slug: SlugConfig{
			Lowercase:       true,
			Separator:       "-",
			StripDiacritics: true,
		},
		Templates: TemplatesConfig{
			Root:       "src/pages",
			Extensions: []string{".js", ".jsx", ".ts", ".tsx"},
		},
		CollectionKey: routing.DefaultCollectionKey,
	}
}

// Load reads a config file over the defaults, so absent fields keep their
// default values, and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate enforces shape constraints on the configuration.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Slug.Separator) != 1 {
		return fmt.Errorf("slug.separator must be a single character, got %q", c.Slug.Separator)
	}
	if c.CollectionKey == "" {
		return fmt.Errorf("collection_key must not be empty")
	}
	for _, ext := range c.Templates.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("templates.extensions entry %q must start with a dot", ext)
		}
	}
	return nil
}

// SlugOptions converts the YAML form into the resolver's options.
func (c Config) SlugOptions() slug.Options {
	sep, _ := utf8.DecodeRuneInString(c.Slug.Separator)
	return slug.Options{
		Lowercase:       c.Slug.Lowercase,
		Separator:       sep,
		StripDiacritics: c.Slug.StripDiacritics,
	}
}
