package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/sskeys/internal/configs"
	"github.com/PolarWolf314/sskeys/internal/envfile"
	"github.com/PolarWolf314/sskeys/internal/ui"
	"github.com/PolarWolf314/sskeys/internal/utils"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// startSpinner starts a spinner on stderr unless verbose or debug output is
// enabled. The returned cleanup stops it and prints s.FinalMSG to the
// command's stdout.
func startSpinner(cmd *cobra.Command, message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Cleared so s.Stop() doesn't print it to stderr.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(cmd.OutOrStdout(), finalMsg)
		}
	}

	return s, cleanup
}

// readConfig returns the text and format of the config at path. "-" reads
// the command's stdin.
func readConfig(cmd *cobra.Command, path, formatFlag string) (string, configs.Format, error) {
	format, err := configs.ParseFormat(formatFlag, path)
	if err != nil {
		return "", format, err
	}

	if path == "-" {
		var data []byte
		if in := cmd.InOrStdin(); in != os.Stdin {
			data, err = utils.ReadInput(in)
		} else {
			data, err = utils.ReadStdin()
		}
		if err != nil {
			return "", format, err
		}
		return string(data), format, nil
	}

	if _, err := utils.ResolveConfigPath(path); err != nil {
		return "", format, err
	}
	data, err := os.ReadFile(path) // #nosec G304 -- the config path is chosen by the user
	if err != nil {
		return "", format, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), format, nil
}

// buildLookup returns the placeholder lookup for a command. Values from
// envFile, when given, take precedence over the process environment.
func buildLookup(envFile string) (configs.LookupFunc, error) {
	if envFile == "" {
		return os.LookupEnv, nil
	}

	vars, err := envfile.Load(envFile)
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Loaded %d variable(s) from %s", len(vars), envFile)

	return envfile.Chain(envfile.MapLookup(vars), os.LookupEnv), nil
}

// absPath joins a relative path to dir. "-" is returned unchanged.
func absPath(dir, path string) string {
	if path == "-" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
