package errors

import (
	"sync"
)

// ErrorHandler is the interface for reporting messages to the user.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console surface a CLIHandler writes to.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
	// Hint prints a dimmed follow-up line.
	Hint(msgs ...string)
}

// SignInHint follows every auth failure reported on the command line.
const SignInHint = "Run 'notedeck login' to sign in."

// CLIHandler handles errors by printing to stdout/stderr using the colors package.
type CLIHandler struct {
	colors     ColorOutput
	mu         sync.Mutex
	inHandling bool
}

var _ ErrorHandler = (*CLIHandler)(nil)

func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

func (h *CLIHandler) Error(msg string) {
	h.mu.Lock()
	if h.inHandling {
		h.mu.Unlock()
		h.colors.Error(msg)
		return
	}
	h.inHandling = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.inHandling = false
		h.mu.Unlock()
	}()

	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	h.colors.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	h.colors.Success(msg)
}

// Report prints err according to its kind. Validation problems are shown as
// warnings naming the field; auth problems are followed by SignInHint.
func (h *CLIHandler) Report(err error) {
	if err == nil {
		return
	}
	switch KindOf(err) {
	case KindValidation:
		msg := MessageOf(err)
		if field := FieldOf(err); field != "" {
			msg = field + ": " + msg
		}
		h.Warning(msg)
	case KindAuth:
		h.Error(MessageOf(err))
		h.colors.Hint(SignInHint)
	default:
		h.Error(err.Error())
	}
}
