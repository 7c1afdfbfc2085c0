package workflows

import (
	"context"
	"errors"

	"github.com/PolarWolf314/sskeys/internal/configs"
	kerrors "github.com/PolarWolf314/sskeys/internal/errors"
	logger "github.com/PolarWolf314/sskeys/internal/logging"
	"github.com/PolarWolf314/sskeys/internal/sanitize"
)

// ValidateOptions configures the validate workflow.
type ValidateOptions struct {
	ConfigText  string
	Format      configs.Format
	Environment string
	Lookup      configs.LookupFunc
	Logger      logger.Logger
}

// EnvironmentReport is the validation outcome of one environment.
type EnvironmentReport struct {
	Name     string
	KeyCount int
	Err      error
}

// ValidateResult contains the outcome of a validate operation.
type ValidateResult struct {
	// Config is set when a single key set was validated.
	Config *configs.Config

	// Environments is set when every environment was validated because
	// none was selected. Sorted by name.
	Environments []EnvironmentReport
}

// Failed reports whether any environment in the result failed validation.
func (r *ValidateResult) Failed() bool {
	for _, env := range r.Environments {
		if env.Err != nil {
			return true
		}
	}
	return false
}

// Validate checks the config the way Generate would without encoding or
// writing anything.
//
// When the config declares environments and none was selected, every
// environment is validated and reported individually instead of failing with
// ErrEnvironmentRequired. Failures in that mode are carried in the reports;
// the returned error is reserved for problems affecting the whole file.
func Validate(ctx context.Context, opts ValidateOptions) (*ValidateResult, error) {
	log := opts.Logger

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := load(opts, opts.Environment)
	if err == nil {
		log.Infof("Validated %d key(s)", len(cfg.Keys))
		return &ValidateResult{Config: cfg}, nil
	}
	if opts.Environment != "" || !errors.Is(err, kerrors.ErrEnvironmentRequired) {
		return nil, err
	}

	names, err := configs.EnvironmentNames(opts.ConfigText, opts.Format)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, kerrors.ErrMissingKeys
	}
	log.Debugf("No environment selected, validating %d environment(s)", len(names))

	result := &ValidateResult{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		report := EnvironmentReport{Name: name}
		cfg, err := load(opts, name)
		if err != nil {
			report.Err = err
			log.Debugf("Environment %q failed: %v", name, err)
		} else {
			report.KeyCount = len(cfg.Keys)
		}
		result.Environments = append(result.Environments, report)
	}

	return result, nil
}

// load runs configs.Load and the sanitizer for one environment.
func load(opts ValidateOptions, environment string) (*configs.Config, error) {
	cfg, err := configs.Load(opts.ConfigText, configs.LoadOptions{
		Environment: environment,
		Lookup:      opts.Lookup,
		Format:      opts.Format,
	})
	if err != nil {
		return nil, err
	}
	if _, err := sanitize.Sanitize(cfg.KeyNames()); err != nil {
		return nil, err
	}
	return cfg, nil
}
