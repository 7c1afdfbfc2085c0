// Package ui provides semantic text formatting for CLI output.
//
// Formatters colorize when the terminal supports it. When NO_COLOR is set or
// colors are unavailable, a few of them fall back to text decorations:
//
//	ui.Code.Sprint("sskeys generate")  // `sskeys generate`
//	ui.Name.Sprint("production")       // 'production'
//	ui.Muted.Sprint("dry run")         // (dry run)
//
// Path, Flag, Success, Error and Warning are left undecorated.
package ui
