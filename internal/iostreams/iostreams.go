package iostreams

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IOStreams provides access to standard input/output streams
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	colorEnabled   bool
	nonInteractive bool
}

// New creates a new IOStreams with default stdin/stdout/stderr
func New() *IOStreams {
	io := &IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}

	io.colorEnabled = io.shouldEnableColor()

	return io
}

// IsStdoutTTY returns true if stdout is a terminal
func (s *IOStreams) IsStdoutTTY() bool {
	if f, ok := s.Out.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// IsStdinTTY returns true if stdin is a terminal
func (s *IOStreams) IsStdinTTY() bool {
	if f, ok := s.In.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// ColorEnabled returns true if color output is enabled
func (s *IOStreams) ColorEnabled() bool {
	return s.colorEnabled
}

// SetColorEnabled overrides color detection, used by the --no-color flags
func (s *IOStreams) SetColorEnabled(enabled bool) {
	s.colorEnabled = enabled
}

// SetNonInteractive disables all prompting regardless of TTY state
func (s *IOStreams) SetNonInteractive(v bool) {
	s.nonInteractive = v
}

// Interactive returns true if the streams allow prompting the user
func (s *IOStreams) Interactive() bool {
	return !s.nonInteractive && s.IsStdinTTY()
}

func (s *IOStreams) shouldEnableColor() bool {
	// Check NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check TERM
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	// Enable color if stdout is a TTY
	return s.IsStdoutTTY()
}

// Color codes
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
)

// Success prints a success message (green checkmark)
func (s *IOStreams) Success(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if s.colorEnabled {
		fmt.Fprintf(s.Out, "%s%s %s%s\n", Green, "✓", msg, Reset)
	} else {
		fmt.Fprintf(s.Out, "✓ %s\n", msg)
	}
}

// Error prints an error message (red X)
func (s *IOStreams) Error(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if s.colorEnabled {
		fmt.Fprintf(s.ErrOut, "%s%s %s%s\n", Red, "✗", msg, Reset)
	} else {
		fmt.Fprintf(s.ErrOut, "✗ %s\n", msg)
	}
}

// Warning prints a warning message (yellow !)
func (s *IOStreams) Warning(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if s.colorEnabled {
		fmt.Fprintf(s.ErrOut, "%s%s %s%s\n", Yellow, "!", msg, Reset)
	} else {
		fmt.Fprintf(s.ErrOut, "! %s\n", msg)
	}
}

// Info prints an info message
func (s *IOStreams) Info(format string, a ...interface{}) {
	fmt.Fprintf(s.Out, format+"\n", a...)
}
