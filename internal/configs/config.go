package configs

import (
	"go/token"
	"sort"

	kerrors "github.com/PolarWolf314/sskeys/internal/errors"
	"github.com/PolarWolf314/sskeys/internal/sanitize"
	"github.com/PolarWolf314/sskeys/internal/secrets"
)

// DefaultPackage is the package name of the generated file when the config omits one.
const DefaultPackage = "secretkeys"

// RawConfig mirrors the configuration file before validation.
type RawConfig struct {
	Keys         map[string]string            `yaml:"keys" toml:"keys"`
	Environments map[string]map[string]string `yaml:"environments" toml:"environments"`
	Output       string                       `yaml:"output" toml:"output"`
	Cipher       string                       `yaml:"cipher" toml:"cipher"`
	Package      string                       `yaml:"package" toml:"package"`
}

// Config is the resolved, validated configuration. It is read-only once returned.
type Config struct {
	// Keys maps each key name to its value with placeholders substituted.
	Keys map[string]string

	Cipher secrets.Mode

	// Output is the output directory as written in the config, "" for the base directory.
	Output string

	// Package is the Go package name of the generated file.
	Package string

	// Environment is the selected environment, "" in flat keys mode.
	Environment string
}

// LookupFunc resolves a ${NAME} placeholder. It has the signature of os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// LoadOptions configures Load.
type LoadOptions struct {
	// Environment selects one entry of an environments config. "" means none.
	// It is ignored for flat keys configs.
	Environment string

	// Lookup resolves placeholders. Nil leaves every placeholder unresolved.
	Lookup LookupFunc

	Format Format
}

// Load decodes, validates and resolves configuration text.
func Load(text string, opts LoadOptions) (*Config, error) {
	raw, err := decode(text, opts.Format)
	if err != nil {
		return nil, err
	}

	hasEnvironments := len(raw.Environments) > 0
	hasFlatKeys := len(raw.Keys) > 0

	if hasEnvironments && hasFlatKeys {
		return nil, kerrors.ErrMutualExclusivity
	}

	var activeKeys map[string]string
	environment := ""

	switch {
	case hasEnvironments:
		available := sortedNames(raw.Environments)

		// Every declared environment is sanitized, not only the selected one.
		for _, name := range available {
			if _, err := sanitize.Sanitize(keyNames(raw.Environments[name])); err != nil {
				return nil, &kerrors.EnvironmentError{Environment: name, Err: err}
			}
		}

		if opts.Environment == "" {
			return nil, kerrors.ErrEnvironmentRequired
		}

		keys, ok := raw.Environments[opts.Environment]
		if !ok {
			return nil, &kerrors.EnvironmentNotFoundError{Requested: opts.Environment, Available: available}
		}
		activeKeys = keys
		environment = opts.Environment
	case hasFlatKeys:
		activeKeys = raw.Keys
	default:
		return nil, kerrors.ErrMissingKeys
	}

	if len(activeKeys) == 0 {
		return nil, kerrors.ErrMissingKeys
	}

	mode, err := secrets.ParseMode(raw.Cipher)
	if err != nil {
		return nil, err
	}

	pkg := raw.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	if !token.IsIdentifier(pkg) || pkg == "_" {
		return nil, &kerrors.InvalidConfigError{
			Reason: "'package' must be a valid Go package name, got '" + pkg + "'",
		}
	}

	resolved, err := resolveKeys(activeKeys, opts.Lookup)
	if err != nil {
		return nil, err
	}

	return &Config{
		Keys:        resolved,
		Cipher:      mode,
		Output:      raw.Output,
		Package:     pkg,
		Environment: environment,
	}, nil
}

// EnvironmentNames returns the sorted environment names declared in text, or
// an empty slice for a flat keys config. Only the environments table is
// decoded; the rest of the config is not validated.
func EnvironmentNames(text string, format Format) ([]string, error) {
	envs, err := decodeEnvironments(text, format)
	if err != nil {
		return nil, err
	}
	return sortedNames(envs), nil
}

// KeyNames returns the sorted key names of c.
func (c *Config) KeyNames() []string {
	return keyNames(c.Keys)
}

func sortedNames(envs map[string]map[string]string) []string {
	names := make([]string, 0, len(envs))
	for name := range envs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func keyNames(keys map[string]string) []string {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
