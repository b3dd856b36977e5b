// Package discovery resolves the set of files a lint run examines.
package discovery

import (
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// DefaultExtensions is the walk allow-list used when none is configured.
var DefaultExtensions = []string{".c", ".h"} //nolint:gochecknoglobals // read-only default

// Resolver turns command-line arguments into an ordered list of paths.
type Resolver struct {
	// Root is the directory walked when no explicit paths are given.
	Root string
	// Extensions is the case-sensitive allow-list for walked files.
	Extensions []string

	logger *slog.Logger
}

// NewResolver creates a Resolver walking root and keeping files whose
// extension is in exts. A nil logger discards diagnostics.
func NewResolver(root string, exts []string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Resolver{
		Root:       root,
		Extensions: exts,
		logger:     logger,
	}
}

// Resolve returns explicit unchanged when it is non-empty. Otherwise it walks
// Root top-down: the matching files of a directory come first in lexical
// order, then each subdirectory is descended in lexical order. Unreadable
// directories are skipped.
func (r *Resolver) Resolve(explicit []string) []string {
	if len(explicit) > 0 {
		return slices.Clone(explicit)
	}

	var paths []string

	r.walk(r.Root, &paths)

	r.logger.Debug("resolved files", "root", r.Root, "count", len(paths))

	return paths
}

func (r *Resolver) walk(dir string, paths *[]string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		r.logger.Debug("skipping unreadable directory", "dir", dir, "error", err)

		return
	}

	var subdirs []string

	for _, entry := range entries {
		path := join(dir, entry.Name())

		if isDir(path, entry) {
			// Symlinked directories are listed but never descended.
			if entry.Type()&fs.ModeSymlink == 0 {
				subdirs = append(subdirs, path)
			}

			continue
		}

		if r.matches(entry.Name()) {
			*paths = append(*paths, path)
		}
	}

	for _, sub := range subdirs {
		r.walk(sub, paths)
	}
}

func (r *Resolver) matches(name string) bool {
	ext := Extension(name)
	if ext == "" {
		return false
	}

	return slices.Contains(r.Extensions, ext)
}

// Extension returns the suffix of name starting at its last dot. Leading
// dots are part of the stem, so ".c" has no extension while "a.c" has ".c".
func Extension(name string) string {
	stem := strings.TrimLeft(name, ".")

	idx := strings.LastIndexByte(stem, '.')
	if idx < 0 {
		return ""
	}

	return stem[idx:]
}

// NormalizeExtensions prefixes a dot where missing and drops empty entries.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))

	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		out = append(out, ext)
	}

	return out
}

// join keeps the root prefix intact so walked paths read "./dir/a.c".
func join(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}

	return dir + string(os.PathSeparator) + name
}

func isDir(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}

	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}
