package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/sskeys/internal/configs"
	"github.com/PolarWolf314/sskeys/internal/ui"
	"github.com/PolarWolf314/sskeys/internal/utils"
	"github.com/PolarWolf314/sskeys/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	validateConfigPath  string
	validateFormat      string
	validateEnvFile     string
	validateEnvironment string
)

func init() {
	validateCmd.Flags().StringVarP(&validateConfigPath, "config", "c", "sskeys.yml", "configuration file path or glob (** allowed), or - for stdin")
	validateCmd.Flags().StringVar(&validateFormat, "format", "", "config format (yaml or toml); inferred from the file extension when empty")
	validateCmd.Flags().StringVar(&validateEnvFile, "env-file", "", "path to a .env file used to resolve ${NAME} placeholders")
	validateCmd.Flags().StringVarP(&validateEnvironment, "environment", "e", "", "environment to validate; omit to validate every environment")
}

var validateCmd = &cobra.Command{
	Use:   "validate [config...]",
	Short: "Check a config and resolve placeholders without generating files",
	Long: `Loads each config exactly as generate would, without writing anything.

When a config declares environments and --environment is omitted, every
environment is validated and reported on its own line.

Configs can be given as arguments or with --config. Globs may use ** to
match across directories.

Examples:
  # Validate sskeys.yml in the current directory
  sskeys validate

  # Validate every config in the repository
  sskeys validate '**/sskeys.{yml,yaml,toml}'`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting validate command")

	cwd, err := os.Getwd()
	if err != nil {
		return Logger.ErrorfAndReturn("failed to get working directory: %v", err)
	}

	lookup, err := buildLookup(validateEnvFile)
	if err != nil {
		return err
	}

	patterns := append([]string(nil), args...)
	if len(patterns) == 0 {
		patterns = []string{validateConfigPath}
	}

	out := cmd.OutOrStdout()

	if len(patterns) == 1 && patterns[0] == "-" {
		return validateOne(cmd, out, "-", lookup)
	}

	for i, pattern := range patterns {
		patterns[i] = absPath(cwd, pattern)
	}
	files, err := utils.ExpandConfigPatterns(patterns)
	if err != nil {
		return err
	}

	if len(files) == 1 {
		return validateOne(cmd, out, files[0], lookup)
	}

	Logger.Infof("Validating %d config %s:%s", len(files), utils.Plural(len(files), "file"), utils.FormatPaths(files))

	failed := 0
	for _, file := range files {
		fmt.Fprintln(out, ui.Path.Sprint(file))
		if err := validateOne(cmd, out, file, lookup); err != nil {
			failed++
			if !errors.Is(err, errValidationFailed) {
				fmt.Fprintf(out, "ERROR — %v\n", err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d config %s failed", errValidationFailed, failed, len(files), utils.Plural(len(files), "file"))
	}
	return nil
}

// validateOne validates a single config and prints its report to out.
func validateOne(cmd *cobra.Command, out io.Writer, path string, lookup configs.LookupFunc) error {
	text, format, err := readConfig(cmd, path, validateFormat)
	if err != nil {
		return err
	}

	result, err := workflows.Validate(cmd.Context(), workflows.ValidateOptions{
		ConfigText:  text,
		Format:      format,
		Environment: validateEnvironment,
		Lookup:      lookup,
		Logger:      Logger,
	})
	if err != nil {
		return err
	}

	if result.Config != nil {
		fmt.Fprintf(out, "Config valid: %d key(s) resolved successfully.\n", len(result.Config.Keys))
		return nil
	}

	for _, env := range result.Environments {
		if env.Err != nil {
			fmt.Fprintf(out, "Environment '%s': ERROR — %v\n", env.Name, env.Err)
			continue
		}
		fmt.Fprintf(out, "Environment '%s': valid — %d key(s) resolved successfully.\n", env.Name, env.KeyCount)
	}

	if result.Failed() {
		return errValidationFailed
	}
	return nil
}
