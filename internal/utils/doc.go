// Package utils provides shared helpers for the sskeys commands.
//
// # Filesystem Utilities
//
// Functions for locating configuration files:
//   - ResolveConfigPath: checks that a config file exists
//   - ExpandConfigPatterns: expands doublestar globs into config files
//   - FormatPaths: formats file paths for human-readable output
//
// # I/O Utilities
//
//   - ReadStdin: reads piped configuration text from standard input
//   - ReadInput: reads a whole reader, rejecting empty input
//   - IsTerminal: checks if stdin is a terminal
package utils
