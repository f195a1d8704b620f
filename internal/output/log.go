// Package output provides terminal output utilities: the global logger,
// styles, file trees, tables, diffs and spinners.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

// stdout receives Print and Println output.
var stdout io.Writer = os.Stdout

// stderr receives log records and error details.
var stderr io.Writer = os.Stderr

func init() {
	logger = log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// LogConfig holds the logging settings resolved from flags and config.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool

	// Timestamps overrides timestamp reporting. Nil means on.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil && !cfg.Verbose {
		timestamps = *cfg.Timestamps
	}

	logger = log.NewWithOptions(stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// PluginLogger returns a child logger prefixed with the plugin slug.
func PluginLogger(slug string) *log.Logger {
	return logger.WithPrefix(StyleNoun.Render("p:" + slug))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
}

// SetLogWriter redirects log records and error details, keeping the current
// level, and returns a function restoring the previous writer. The writer
// survives later SetupLogging calls.
func SetLogWriter(w io.Writer) (restore func()) {
	prev := stderr
	stderr = w
	logger.SetOutput(w)
	return func() {
		stderr = prev
		logger.SetOutput(prev)
	}
}

// SetOutput redirects Print and Println and returns a function restoring
// the previous writer.
func SetOutput(w io.Writer) (restore func()) {
	prev := stdout
	stdout = w
	return func() { stdout = prev }
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	_, _ = io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}

// Details prints multi-line error details to stderr, unstyled.
func Details(msg string) {
	_, _ = io.WriteString(stderr, msg)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		_, _ = io.WriteString(stderr, "\n")
	}
}
