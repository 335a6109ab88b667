package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, args ...any) { m.Called(msg) }
func (m *mockLogger) Info(msg string, args ...any)  { m.Called(msg) }
func (m *mockLogger) Warn(msg string, args ...any)  { m.Called(msg) }
func (m *mockLogger) Error(msg string, args ...any) { m.Called(msg) }

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(nil, nil)
		SetQuiet(false)
		SetDebug(false)
		SetLogger(nil)
	})
	return &out, &errOut
}

func TestOutputStreams(t *testing.T) {
	tests := []struct {
		name     string
		emit     func(...string)
		toStderr bool
		contains []string
	}{
		{"error", Error, true, []string{"Error:", Red, "something went wrong"}},
		{"warning", Warning, true, []string{"Warning:", Yellow, "something went wrong"}},
		{"success", Success, false, []string{checkmark, Green, "something went wrong"}},
		{"info", Info, false, []string{Blue, "something went wrong"}},
		{"muted", Muted, false, []string{Dim, "something went wrong"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := capture(t)
			tt.emit("something", "went", "wrong")

			target, other := out, errOut
			if tt.toStderr {
				target, other = errOut, out
			}
			for _, want := range tt.contains {
				assert.Contains(t, target.String(), want)
			}
			assert.Empty(t, other.String())
		})
	}
}

func TestQuietSuppressesInformationalOutput(t *testing.T) {
	out, errOut := capture(t)
	SetQuiet(true)

	Info("hidden")
	Success("hidden")
	Error("shown")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "shown")
}

func TestDebugOnlyWhenEnabled(t *testing.T) {
	_, errOut := capture(t)

	Debug("first")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	Debug("second")
	assert.Contains(t, errOut.String(), "Debug:")
	assert.Contains(t, errOut.String(), "second")
}

func TestLoggerMirror(t *testing.T) {
	capture(t)
	l := &mockLogger{}
	l.On("Error", "disk full").Once()
	l.On("Warn", "low space").Once()
	l.On("Info", "saved").Once()
	SetLogger(l)

	Error("disk full")
	Warning("low space")
	Success("saved")

	l.AssertExpectations(t)
}
