package resource

import (
	"os"
	"path/filepath"
	"strings"
)

// PatternsFor returns the search locations for a kind, with {name}
// substituted. An empty name keeps a readable placeholder for error output.
func PatternsFor(kind Kind, name string) []string {
	cfg := Kinds[kind]
	if name == "" {
		name = "<" + string(kind) + "-name>"
	}

	patterns := make([]string, 0, len(searchPatterns[kind]))
	for _, p := range searchPatterns[kind] {
		path := strings.ReplaceAll(p, "{name}", name)
		if cfg.FileExtension != "" && !strings.HasSuffix(path, cfg.FileExtension) {
			path += cfg.FileExtension
		}
		patterns = append(patterns, path)
	}
	return patterns
}

// Locate finds a named resource in an extracted repository, trying each
// directory convention in priority order. It returns the matching path and
// whether a match was found.
func Locate(repoDir string, kind Kind, name string) (string, bool) {
	if name == "" {
		return "", false
	}

	for _, pattern := range PatternsFor(kind, name) {
		path := filepath.Join(repoDir, filepath.FromSlash(pattern))
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

// DiagnoseLayout reports which known layout directories exist in a
// repository. Used to build actionable not-found errors.
func DiagnoseLayout(repoDir string) []string {
	var found []string
	for _, dir := range layoutDirs {
		if _, err := os.Stat(filepath.Join(repoDir, filepath.FromSlash(dir))); err == nil {
			found = append(found, dir)
		}
	}
	return found
}
