package scanner

import (
	"sort"
	"strings"
)

// excludedDirs are directory names never descended into during discovery.
// Matching is by exact directory name, so "vendor" skips "pages/vendor" but
// not "vendor_pages".
var excludedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".cache":       true,
	"public":       true,
	"dist":         true,
	"build":        true,
	"vendor":       true,
}

func isExcludedDir(name string) bool {
	return excludedDirs[name]
}

// FilterTemplates keeps the paths matching one of the extensions and returns
// them sorted. An empty extension list keeps everything.
func FilterTemplates(paths []string, extensions []string) []string {
	if len(paths) == 0 {
		return nil
	}

	var filtered []string
	for _, path := range paths {
		if matchesExtension(path, extensions) {
			filtered = append(filtered, path)
		}
	}

	sort.Strings(filtered)
	return filtered
}

func matchesExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
