// Package colors provides color output utilities for the command line.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Dim    = "\033[2m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled = false
	quiet        = false
	logger       Logger
	mu           sync.RWMutex

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	inErrorHandling bool
	errorMu         sync.Mutex
)

func init() {
	if val := os.Getenv("NOTEDECK_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// SetQuiet suppresses informational and success output.
// Errors and warnings are always written.
func SetQuiet(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	quiet = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output. Nil writers restore the process streams.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout = out
	stderr = errOut
}

func snapshot() (Logger, io.Writer, io.Writer, bool, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return logger, stdout, stderr, debugEnabled, quiet
}

// write prints a formatted line and reports write failures once,
// falling back to a plain stderr write when already reporting one.
func write(w io.Writer, line string) {
	if _, err := fmt.Fprint(w, line); err != nil {
		errorMu.Lock()
		handling := inErrorHandling
		inErrorHandling = true
		errorMu.Unlock()
		if handling {
			fmt.Fprintf(os.Stderr, "failed to print message: %v\n", err)
			return
		}
		defer func() {
			errorMu.Lock()
			inErrorHandling = false
			errorMu.Unlock()
		}()
		Warning("failed to print message: " + err.Error())
	}
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	l, _, errOut, _, _ := snapshot()
	if l != nil {
		l.Error(msg)
	}
	write(errOut, fmt.Sprintf("%sError:%s %s%s\n", Red, Reset, msg, Reset))
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	l, out, _, _, q := snapshot()
	if l != nil {
		l.Info(msg, "type", "success")
	}
	if q {
		return
	}
	write(out, fmt.Sprintf("%s%s%s %s%s\n", Green, checkmark, Reset, msg, Reset))
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	l, _, errOut, _, _ := snapshot()
	if l != nil {
		l.Warn(msg)
	}
	write(errOut, fmt.Sprintf("%sWarning:%s %s%s\n", Yellow, Reset, msg, Reset))
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	l, out, _, _, q := snapshot()
	if l != nil {
		l.Info(msg)
	}
	if q {
		return
	}
	write(out, fmt.Sprintf("%s%s%s\n", Blue, msg, Reset))
}

// Muted outputs secondary text, such as timestamps or hints, to stdout.
func Muted(msgs ...string) {
	_, out, _, _, q := snapshot()
	if q {
		return
	}
	write(out, fmt.Sprintf("%s%s%s\n", Dim, strings.Join(msgs, " "), Reset))
}

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) {
	l, _, errOut, debug, _ := snapshot()
	if !debug {
		return
	}
	msg := strings.Join(msgs, " ")
	if l != nil {
		l.Debug(msg)
	}
	write(errOut, fmt.Sprintf("%sDebug:%s %s%s\n", Cyan, Reset, msg, Reset))
}
