package workflows

import (
	"context"
	"path/filepath"

	"github.com/PolarWolf314/sskeys/internal/configs"
	logger "github.com/PolarWolf314/sskeys/internal/logging"
	"github.com/PolarWolf314/sskeys/internal/render"
	"github.com/PolarWolf314/sskeys/internal/sanitize"
	"github.com/PolarWolf314/sskeys/internal/secrets"

	"github.com/google/uuid"
)

// GenerateOptions configures the generate workflow.
type GenerateOptions struct {
	// ConfigText is the raw configuration document.
	ConfigText string

	// Format selects the config decoder.
	Format configs.Format

	// Environment selects an entry of an environments config.
	Environment string

	// Lookup resolves ${NAME} placeholders.
	Lookup configs.LookupFunc

	// BaseDir anchors relative output paths. Usually the working directory.
	BaseDir string

	// OutputDir overrides the config's output setting when non-empty.
	OutputDir string

	// SaltLength is the XOR salt length. Zero means secrets.DefaultSaltLength.
	SaltLength int

	// DryRun renders the file without writing it.
	DryRun bool

	Logger logger.Logger
}

// GenerateResult contains the outcome of a generate operation.
type GenerateResult struct {
	Config *configs.Config

	// Rendered is the complete generated source.
	Rendered string

	// OutputPath is where the file was, or in a dry run would be, written.
	OutputPath string

	// GenerationID identifies this run in the generated header.
	GenerationID string

	KeyCount int

	DryRun bool
}

// Generate loads the config, sanitizes key names, encodes the values with
// the configured cipher, renders secret_keys.go and writes it unless DryRun
// is set.
//
// Errors from each stage are returned unmodified, so callers can match them
// with errors.Is against the internal/errors sentinels.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	log := opts.Logger

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debugf("Loading %s config", opts.Format)
	cfg, err := configs.Load(opts.ConfigText, configs.LoadOptions{
		Environment: opts.Environment,
		Lookup:      opts.Lookup,
		Format:      opts.Format,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Environment != "" {
		log.Infof("Using environment %q", cfg.Environment)
	}
	log.Infof("Loaded %d key(s), cipher %s", len(cfg.Keys), cfg.Cipher.Label())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names, err := sanitize.Sanitize(cfg.KeyNames())
	if err != nil {
		return nil, err
	}
	for _, original := range cfg.KeyNames() {
		if names[original] != original {
			log.Debugf("Key %q is exposed as %s()", original, names[original])
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var encodeOpts []secrets.Option
	if opts.SaltLength != 0 {
		encodeOpts = append(encodeOpts, secrets.WithSaltLength(opts.SaltLength))
	}
	material, err := secrets.Encode(cfg.Keys, cfg.Cipher, encodeOpts...)
	if err != nil {
		return nil, err
	}
	log.Debugf("Encoded %d value(s) with %d byte(s) of shared material", len(material.Entries), len(material.Shared))

	generationID := uuid.NewString()
	rendered, err := render.Render(material, names, render.Options{
		Package:      cfg.Package,
		GenerationID: generationID,
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outputDir := ResolveOutputDir(opts.BaseDir, cfg.Output, opts.OutputDir)
	result := &GenerateResult{
		Config:       cfg,
		Rendered:     rendered,
		OutputPath:   filepath.Join(outputDir, render.FileName),
		GenerationID: generationID,
		KeyCount:     len(cfg.Keys),
		DryRun:       opts.DryRun,
	}

	if opts.DryRun {
		log.Infof("Dry run, not writing %s", result.OutputPath)
		return result, nil
	}

	path, err := render.Write(outputDir, rendered)
	if err != nil {
		return nil, err
	}
	result.OutputPath = path
	log.Infof("Wrote %s", path)

	return result, nil
}

// ResolveOutputDir returns the directory secret_keys.go is written to.
// override wins over configOutput, and either is joined to baseDir unless
// absolute. With neither set the file goes to baseDir.
func ResolveOutputDir(baseDir, configOutput, override string) string {
	dir := configOutput
	if override != "" {
		dir = override
	}
	if dir == "" {
		return baseDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(baseDir, dir)
}
