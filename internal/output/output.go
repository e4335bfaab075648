package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var (
	mu        sync.Mutex
	writer    io.Writer = os.Stdout
	logWriter io.Writer = os.Stderr

	// Logger carries diagnostic output. It writes to stderr at info level
	// until SetVerbose(true) lowers it to debug.
	Logger = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
		Prefix:          "siegmeyer",
	})
}

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	Logger = newLogger(logWriter, v)
}

// SetWriter redirects user-facing output and returns the previous writer.
// Tests use it to capture what the CLI prints.
func SetWriter(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := writer
	writer = w
	return prev
}

// SetLogWriter redirects diagnostic output, keeping the current level.
func SetLogWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logWriter = w
	Logger.SetOutput(w)
}

// Writer returns the writer user-facing output currently goes to.
func Writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return writer
}

// Shared returns a writer to the current output that is serialised with
// Success, Info and the other helpers. Use it for output produced from
// other goroutines.
func Shared() io.Writer {
	return sharedWriter{}
}

type sharedWriter struct{}

func (sharedWriter) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()
	return writer.Write(p)
}

func writeLine(s string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(writer, s)
}

// Success prints a success message with 🔥 emoji and green color.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Scaffolded MySite")
func Success(msg string) {
	writeLine(successStyle.Render("🔥 " + msg))
}

// Error prints an error message with ❌ emoji and red color.
func Error(msg string) {
	writeLine(errorStyle.Render("❌ " + msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
func Info(msg string) {
	writeLine(infoStyle.Render("ℹ️  " + msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("gulp serve")
func Step(msg string) {
	writeLine(stepStyle.Render("   " + msg))
}

// Verbose logs a debug message only if verbose mode is enabled.
//
// Example:
//
//	output.Verbose("copying asset", "src", "app/styles", "dest", "app/styles")
func Verbose(msg string, keyvals ...any) {
	Logger.Debug(msg, keyvals...)
}

// Warn logs a warning regardless of verbosity.
func Warn(msg string, keyvals ...any) {
	Logger.Warn(msg, keyvals...)
}

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the terminal width, defaulting to 80 if unable to detect.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
