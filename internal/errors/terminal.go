package errors

import "github.com/cristianoliveira/notedeck/internal/colors"

// terminalOutput prints through the colors package, so every report is
// also mirrored to the log file.
type terminalOutput struct{}

var _ ColorOutput = terminalOutput{}

func (terminalOutput) Error(msgs ...string)   { colors.Error(msgs...) }
func (terminalOutput) Warning(msgs ...string) { colors.Warning(msgs...) }
func (terminalOutput) Info(msgs ...string)    { colors.Info(msgs...) }
func (terminalOutput) Success(msgs ...string) { colors.Success(msgs...) }
func (terminalOutput) Hint(msgs ...string)    { colors.Muted(msgs...) }

// NewDefaultCLIHandler returns a handler writing to the terminal.
func NewDefaultCLIHandler() *CLIHandler {
	return NewCLIHandler(terminalOutput{})
}
