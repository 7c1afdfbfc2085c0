package cmd

import (
	"errors"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/sskeys/internal/errors"
)

func TestRootPrintsBanner(t *testing.T) {
	setupTestEnvironment(t)

	stdout, _, err := runCLI(t, nil)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(stdout, "`sskeys --help`") {
		t.Errorf("expected help hint, got: %s", stdout)
	}
	if len(strings.Split(stdout, "\n")) < 4 {
		t.Errorf("expected a multi-line banner, got: %s", stdout)
	}
}

func TestVersion(t *testing.T) {
	setupTestEnvironment(t)

	stdout, _, err := runCLI(t, nil, "version")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if stdout != "sskeys "+Version+"\n" {
		t.Errorf("version output = %q", stdout)
	}
}

func TestResetGlobalState(t *testing.T) {
	setupTestEnvironment(t)

	if _, _, err := runCLI(t, nil, "generate", "--factor", "7", "--dry-run", "-v"); err == nil {
		t.Fatal("expected generate to fail without a config")
	}
	if generateFactor != 7 || !generateDryRun || !verbose {
		t.Fatalf("flags were not parsed: factor=%d dryRun=%t verbose=%t", generateFactor, generateDryRun, verbose)
	}

	ResetGlobalState()

	if generateFactor != 32 || generateDryRun || verbose {
		t.Errorf("ResetGlobalState left factor=%d dryRun=%t verbose=%t", generateFactor, generateDryRun, verbose)
	}
	if generateCmd.Flags().Lookup("factor").Changed {
		t.Error("ResetGlobalState should clear Changed")
	}
}

func TestFormatError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{"ConfigNotFound", kerrors.ErrConfigFileNotFound, "--config"},
		{"Unresolved", &kerrors.EnvVarUnresolvedError{Name: "X"}, "--env-file"},
		{"OutputDir", &kerrors.OutputDirectoryNotFoundError{Path: "gen"}, "--output-dir"},
		{"Collision", &kerrors.KeyNameCollisionError{Names: []string{"a.b", "a_b"}, Sanitized: "a_b"}, "Rename"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatError(tt.err)
			if !strings.HasPrefix(got, "✗ "+tt.err.Error()) {
				t.Errorf("FormatError should start with the error, got %q", got)
			}
			if !strings.Contains(got, "→ ") || !strings.Contains(got, tt.wantHint) {
				t.Errorf("FormatError hint missing %q, got %q", tt.wantHint, got)
			}
		})
	}

	if got := FormatError(errors.New("boom")); got != "✗ boom" {
		t.Errorf("FormatError without hint = %q", got)
	}
}
