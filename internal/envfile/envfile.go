package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/PolarWolf314/sskeys/internal/configs"
	kerrors "github.com/PolarWolf314/sskeys/internal/errors"

	"github.com/joho/godotenv"
)

// Load parses the .env file at path. KEY=value lines, export prefixes,
// comments and quoted values are supported.
func Load(path string) (map[string]string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrDotEnvNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", kerrors.ErrDotEnvNotFound, path)
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return vars, nil
}

// MapLookup adapts vars to a configs.LookupFunc.
func MapLookup(vars map[string]string) configs.LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// Chain returns a lookup that asks each of lookups in order and returns the
// first hit. Nil entries are skipped.
func Chain(lookups ...configs.LookupFunc) configs.LookupFunc {
	return func(name string) (string, bool) {
		for _, lookup := range lookups {
			if lookup == nil {
				continue
			}
			if v, ok := lookup(name); ok {
				return v, true
			}
		}
		return "", false
	}
}
