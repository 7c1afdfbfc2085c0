package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func forceColor(t *testing.T) {
	t.Helper()
	if v, ok := os.LookupEnv("NO_COLOR"); ok {
		os.Unsetenv("NO_COLOR")
		t.Cleanup(func() { os.Setenv("NO_COLOR", v) })
	}
	original := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = original })
}

func TestFormatterWithColor(t *testing.T) {
	forceColor(t)

	result := Code.Sprint("sskeys generate")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}

	named := Name.Sprintf("env %s", "staging")
	if strings.HasPrefix(named, "'") || !strings.Contains(named, "env staging") {
		t.Errorf("Name.Sprintf with color = %q", named)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"CodeAddsBackticks", Code, "sskeys validate", "`sskeys validate`"},
		{"PathUndecorated", Path, "secret_keys.go", "secret_keys.go"},
		{"FlagUndecorated", Flag, "--dry-run", "--dry-run"},
		{"SuccessUndecorated", Success, "✓", "✓"},
		{"ErrorUndecorated", Error, "✗", "✗"},
		{"WarningUndecorated", Warning, "⚠", "⚠"},
		{"NameAddsQuotes", Name, "API_KEY", "'API_KEY'"},
		{"MutedAddsParentheses", Muted, "dry run", "(dry run)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.formatter.Sprint(tt.input); got != tt.want {
				t.Errorf("Sprint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got, want := Code.Sprintf("sskeys %s -e %s", "generate", "prod"), "`sskeys generate -e prod`"; got != want {
		t.Errorf("Code.Sprintf() = %q, want %q", got, want)
	}
	if got, want := Code.Sprint("sskeys", " ", "version"), "`sskeys version`"; got != want {
		t.Errorf("Code.Sprint with multiple args = %q, want %q", got, want)
	}
}

func TestNoColorFunction(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if !noColor() {
		t.Error("noColor() should return true when NO_COLOR is set, even to an empty value")
	}

	forceColor(t)
	color.NoColor = true
	if !noColor() {
		t.Error("noColor() should return true when color.NoColor is true")
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "\n"},
		{"done", "done\n"},
		{"done\n", "done\n"},
	}
	for _, tt := range tests {
		if got := EnsureNewline(tt.in); got != tt.want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
