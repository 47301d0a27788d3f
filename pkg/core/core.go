// Package core provides the stream and exit-code plumbing shared by applets.
package core

import (
	"fmt"
	"io"
	"os"
)

// Exit codes following POSIX conventions
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Stdio holds the output streams for an applet.
// This allows for easy testing by injecting mock streams.
type Stdio struct {
	Out io.Writer
	Err io.Writer
}

// DefaultStdio returns Stdio configured with os.Stdout, os.Stderr.
func DefaultStdio() *Stdio {
	return &Stdio{
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Errorf writes a formatted error message to stderr.
func (s *Stdio) Errorf(format string, args ...any) {
	fmt.Fprintf(s.Err, format, args...)
}

// Printf writes a formatted message to stdout.
func (s *Stdio) Printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

// Println writes a message to stdout with a newline.
func (s *Stdio) Println(args ...any) {
	fmt.Fprintln(s.Out, args...)
}

// Fatal prints err prefixed with the applet name and returns ExitFailure.
func Fatal(stdio *Stdio, applet string, err error) int {
	stdio.Errorf("%s: %v\n", applet, err)
	return ExitFailure
}
