package utils

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ReadStdin reads all content from stdin.
// Returns an error if stdin is a terminal (no piped data), empty, or cannot be read.
func ReadStdin() ([]byte, error) {
	if IsTerminal() {
		return nil, fmt.Errorf("no data provided on stdin (hint: pipe your config to this command)")
	}
	return ReadInput(os.Stdin)
}

// ReadInput reads all of r, failing when it is empty.
func ReadInput(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("input is empty")
	}

	return data, nil
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
