package cmd

import (
	"os"

	"github.com/PolarWolf314/sskeys/internal/render"
	"github.com/PolarWolf314/sskeys/internal/secrets"
	"github.com/PolarWolf314/sskeys/internal/ui"
	"github.com/PolarWolf314/sskeys/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	generateConfigPath  string
	generateFormat      string
	generateFactor      int
	generateOutputDir   string
	generateEnvFile     string
	generateDryRun      bool
	generateEnvironment string
)

func init() {
	generateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "sskeys.yml", "configuration file path, or - for stdin")
	generateCmd.Flags().StringVar(&generateFormat, "format", "", "config format (yaml or toml); inferred from the file extension when empty")
	generateCmd.Flags().IntVarP(&generateFactor, "factor", "f", secrets.DefaultSaltLength, "salt length in bytes for the xor cipher")
	generateCmd.Flags().StringVar(&generateOutputDir, "output-dir", "", "override the output directory from the config")
	generateCmd.Flags().StringVar(&generateEnvFile, "env-file", "", "path to a .env file used to resolve ${NAME} placeholders")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "print the generated source instead of writing it")
	generateCmd.Flags().StringVarP(&generateEnvironment, "environment", "e", "", "environment to generate when the config uses an environments block")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate secret_keys.go with obfuscated secrets",
	Long: `Reads the config, resolves ${NAME} placeholders, and writes secret_keys.go
with one accessor function per key.

Placeholders are resolved from the process environment. Values from
--env-file take precedence; the process environment is not modified.

Relative output paths are resolved against the working directory.

Examples:
  # Generate from sskeys.yml in the current directory
  sskeys generate

  # Generate the production key set into ./internal/secretkeys
  sskeys generate -e prod --output-dir internal/secretkeys

  # Preview the generated file
  sskeys generate --dry-run`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting generate command")

	if generateFactor < 1 {
		return Logger.ErrorfAndReturn("--factor must be at least 1, got %d", generateFactor)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return Logger.ErrorfAndReturn("failed to get working directory: %v", err)
	}

	lookup, err := buildLookup(generateEnvFile)
	if err != nil {
		return err
	}

	configPath := absPath(cwd, generateConfigPath)
	text, format, err := readConfig(cmd, configPath, generateFormat)
	if err != nil {
		return err
	}
	Logger.Infof("Config loaded: %s", configPath)

	spinner, cleanup := startSpinner(cmd, "Generating "+render.FileName+"...")
	defer cleanup()

	result, err := workflows.Generate(cmd.Context(), workflows.GenerateOptions{
		ConfigText:  text,
		Format:      format,
		Environment: generateEnvironment,
		Lookup:      lookup,
		BaseDir:     cwd,
		OutputDir:   generateOutputDir,
		SaltLength:  generateFactor,
		DryRun:      generateDryRun,
		Logger:      Logger,
	})
	if err != nil {
		return err
	}

	if generateEnvironment != "" && result.Config.Environment == "" {
		Logger.Debugf("Ignoring --environment %q: config declares flat keys", generateEnvironment)
	}

	if result.DryRun {
		spinner.FinalMSG = result.Rendered
		return nil
	}

	spinner.FinalMSG = ui.Success.Sprint("✓") + " Generated " + render.FileName + " at " + ui.Path.Sprint(result.OutputPath)
	return nil
}
