// Testing utilities shared by the command tests: a fresh root command per
// run, a temporary working directory, and config fixtures.
package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// setupTestEnvironment changes into a fresh temporary directory for the
// duration of the test and disables colors.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}

	tempDir := t.TempDir()
	// Resolve symlinks so paths printed by the commands match on macOS.
	if resolved, err := filepath.EvalSymlinks(tempDir); err == nil {
		tempDir = resolved
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		ResetGlobalState()
	})

	return tempDir
}

// writeFile writes contents to name inside dir, creating parent directories.
func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	// #nosec G306 -- test fixture
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// createTestCLI creates a fresh root command with the given arguments and
// output streams.
func createTestCLI(args []string, stdout, stderr io.Writer) *cobra.Command {
	ResetGlobalState()
	if args == nil {
		// Cobra falls back to os.Args when args is nil.
		args = []string{}
	}

	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	return rootCmd
}

// runCLI executes the CLI with args and returns captured stdout, stderr and
// the command error.
func runCLI(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	rootCmd := createTestCLI(args, &stdout, &stderr)
	if stdin != nil {
		rootCmd.SetIn(stdin)
	}
	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}
