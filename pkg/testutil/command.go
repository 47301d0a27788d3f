package testutil

import (
	"bytes"
	"errors"
	"os/exec"
	"testing"
)

// Command wraps exec.Command for test helpers.
func Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...) // #nosec G204 -- test helper for external command
}

// RunBinary executes bin with args in dir and returns stdout, stderr and the
// exit code. env entries are appended to the inherited environment.
func RunBinary(t *testing.T, bin string, args []string, dir string, env ...string) (string, string, int) {
	t.Helper()
	cmd := Command(bin, args...)
	cmd.Dir = dir
	cmd.Env = append(cmd.Environ(), env...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	exitCode := 0
	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if !errors.As(err, &ee) {
			t.Fatalf("run %s: %v", bin, err)
		}
		exitCode = ee.ExitCode()
	}
	return outBuf.String(), errBuf.String(), exitCode
}
