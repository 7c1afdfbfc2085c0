package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	kerrors "github.com/PolarWolf314/sskeys/internal/errors"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveConfigPath returns path if it names an existing regular file.
func ResolveConfigPath(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", kerrors.ErrConfigFileNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("error checking config file %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", kerrors.ErrConfigFileNotFound, path)
	}
	return path, nil
}

// ExpandConfigPatterns resolves each pattern to config files. Patterns
// without glob metacharacters are plain paths and must exist. Globs may use
// ** to cross directories; a glob that matches nothing fails with
// ErrNoConfigMatches. The result is sorted and free of duplicates.
func ExpandConfigPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			path, err := ResolveConfigPath(pattern)
			if err != nil {
				return nil, err
			}
			if !seen[filepath.Clean(path)] {
				seen[filepath.Clean(path)] = true
				files = append(files, path)
			}
			continue
		}

		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q", pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
		}
		matches = regularFiles(matches)
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrNoConfigMatches, pattern)
		}
		for _, match := range matches {
			if !seen[filepath.Clean(match)] {
				seen[filepath.Clean(match)] = true
				files = append(files, match)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func regularFiles(paths []string) []string {
	files := paths[:0]
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			files = append(files, path)
		}
	}
	return files
}
