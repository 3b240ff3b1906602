// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Routegen - Routegen derives concrete URL paths from file-path templates containing bracketed field segments, plus the data-query shapes needed to materialize them.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package scanner discovers page-template files under a project root.
package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
)

// Scanner walks a pages root for template files. Templates need not be
// tracked by any VCS, so discovery walks the filesystem directly.
type Scanner struct {
	root string

	mu        sync.Mutex
	walkCache []string
}

// New creates a Scanner for the given pages root.
func New(root string) *Scanner {
	return &Scanner{root: root}
}

// Files returns every regular file under the root as a slash-separated path
// relative to it, caching the walk for the instance lifetime. Excluded
// directories (build output, dependencies) are skipped.
func (s *Scanner) Files() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.walkCache != nil {
		return s.walkCache, nil
	}

	var files []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != s.root && isExcludedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", s.root, err)
	}

	if files == nil {
		files = []string{}
	}
	s.walkCache = files
	return s.walkCache, nil
}

// TemplateFiles returns the discovered files carrying one of the given
// extensions, sorted deterministically.
func (s *Scanner) TemplateFiles(extensions []string) ([]string, error) {
	all, err := s.Files()
	if err != nil {
		return nil, err
	}
	return FilterTemplates(all, extensions), nil
}
