package cmd

import (
	"errors"

	kerrors "github.com/PolarWolf314/sskeys/internal/errors"
	"github.com/PolarWolf314/sskeys/internal/ui"
)

// errValidationFailed is returned after validate has already printed the
// per-environment failures.
var errValidationFailed = errors.New("validation failed")

// FormatError renders err for the terminal, followed by a hint when one
// applies.
func FormatError(err error) string {
	msg := ui.Error.Sprint("✗") + " " + err.Error()
	if hint := hintFor(err); hint != "" {
		msg += "\n→ " + hint
	}
	return msg
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrConfigFileNotFound):
		return "Create " + ui.Path.Sprint("sskeys.yml") + " or pass " + ui.Flag.Sprint("--config")
	case errors.Is(err, kerrors.ErrEnvironmentRequired):
		return "Select one with " + ui.Flag.Sprint("--environment") + ", or run " + ui.Code.Sprint("sskeys validate") + " to check them all"
	case errors.Is(err, kerrors.ErrEnvVarUnresolved):
		return "Export the variable or load it with " + ui.Flag.Sprint("--env-file")
	case errors.Is(err, kerrors.ErrOutputDirectoryNotFound):
		return "Create the directory or pass " + ui.Flag.Sprint("--output-dir")
	case errors.Is(err, kerrors.ErrKeyNameCollision), errors.Is(err, kerrors.ErrInvalidKeyName):
		return "Rename the key in the config"
	}
	return ""
}
