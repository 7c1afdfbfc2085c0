package render

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/sskeys/internal/errors"
)

// FileName is the name of the generated file inside the output directory.
const FileName = "secret_keys.go"

// Write atomically replaces FileName in dir with text and returns its path.
// dir must already exist. Either the complete file is in place afterwards or
// the previous contents are untouched.
func Write(dir, text string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", &kerrors.OutputDirectoryNotFoundError{Path: dir}
	}

	target := filepath.Join(dir, FileName)

	// The temp file lives in dir so the rename never crosses filesystems.
	// The .tmp suffix keeps the Go toolchain from picking up a leftover.
	temp, err := os.CreateTemp(dir, ".secret_keys-*.go.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tempPath := temp.Name()

	cleanup := func() {
		_ = temp.Close()
		_ = os.Remove(tempPath)
	}

	if _, err := temp.WriteString(text); err != nil {
		cleanup()
		return "", fmt.Errorf("writing %s: %w", tempPath, err)
	}
	if err := temp.Sync(); err != nil {
		cleanup()
		return "", fmt.Errorf("syncing %s: %w", tempPath, err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("closing %s: %w", tempPath, err)
	}

	// #nosec G302 -- generated source should be readable like any other source file
	if err := os.Chmod(tempPath, 0644); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("setting permissions on %s: %w", tempPath, err)
	}

	if err := os.Rename(tempPath, target); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("renaming temp file to %s: %w", target, err)
	}

	return target, nil
}
