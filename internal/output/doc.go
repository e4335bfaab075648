// Package output provides styled terminal output for the siegmeyer CLI.
//
// User-facing lines (Success, Error, Info, Step) are rendered with lipgloss.
// Diagnostic messages (Verbose, Warn) go through a charmbracelet/log logger
// whose level follows the --verbose flag.
package output
