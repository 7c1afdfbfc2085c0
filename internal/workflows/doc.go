// Package workflows provides high-level orchestration for sskeys commands.
//
// Workflows coordinate configs, sanitize, secrets and render to implement
// complete user-facing features. Each workflow handles a single command's
// business logic, independent of CLI concerns like flag parsing, spinners,
// and output formatting.
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and reads the config file
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// # Available Workflows
//
//   - Generate: load, sanitize, encode, render and write secret_keys.go
//   - Validate: check a config without writing anything
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package unchanged,
// so the CLI can branch with errors.Is and errors.As:
//
//	result, err := workflows.Generate(ctx, opts)
//	var notFound *kerrors.EnvironmentNotFoundError
//	if errors.As(err, &notFound) {
//	    // list notFound.Available
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// It is checked between stages; a cancelled context stops the workflow
// before anything is written.
package workflows
