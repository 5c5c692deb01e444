// Package resolver locates the newest installed IDE binary.
//
// Installations live side-by-side under a single vendor root, one directory
// per version (e.g. "IntelliJ IDEA 2024.1", "IntelliJ IDEA 2024.3"). The
// directory names embed the version, so plain descending lexicographic order
// picks the newest install; no semantic version parsing is applied.
package resolver

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattsre/idealaunch/config"
	"github.com/mattsre/idealaunch/fileutil"
	"github.com/mattsre/idealaunch/logutil"
)

// Resolve scans the vendor root for installation directories matching the
// configured product prefix, picks the highest-sorted one, and confirms the
// expected executable exists beneath it.
//
// The boolean result is false for every "no usable installation" outcome:
// missing root, no matching candidate, or candidate without the executable.
// None of these are errors; a missing installation is a normal state.
// The result is ephemeral and recomputed on every call.
func Resolve(cfg config.Config) (string, bool) {
	candidates := Candidates(cfg)
	if len(candidates) == 0 {
		logutil.Debug("no installation candidates found", "root", cfg.VendorRoot, "prefix", cfg.ProductPrefix)
		return "", false
	}

	newest := candidates[0]
	exe := cfg.ExePath(newest)
	if !fileutil.IsRegularFile(exe) {
		logutil.Debug("newest candidate has no executable", "candidate", newest, "expected", exe)
		return "", false
	}

	logutil.Debug("resolved IDE binary", "path", exe, "candidates", len(candidates))
	return exe, true
}

// Candidates returns the full paths of matching installation directories,
// sorted descending by name so the newest install comes first.
func Candidates(cfg config.Config) []string {
	entries, err := os.ReadDir(cfg.VendorRoot)
	if err != nil {
		logutil.Debug("vendor root not readable", "root", cfg.VendorRoot, "error", err)
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), cfg.ProductPrefix) {
			names = append(names, entry.Name())
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(cfg.VendorRoot, name)
	}
	return paths
}
