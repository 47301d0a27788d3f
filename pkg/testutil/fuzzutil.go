package testutil

import (
	"os"
	"sync"
	"testing"
)

const MaxFuzzBytes = 2048

var cwdMu sync.Mutex

func ClampString(data string, max int) string {
	if len(data) > max {
		return data[:max]
	}
	return data
}

// RunAppletInDir runs an applet with dir as the working directory. Fuzz
// workers share the process cwd, so calls are serialized.
func RunAppletInDir(t *testing.T, run RunApplet, args []string, dir string) (string, string, int) {
	t.Helper()
	cwdMu.Lock()
	defer cwdMu.Unlock()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(oldDir) }()

	stdio, out, errBuf := CaptureStdio()
	code := run(stdio, args)
	return out.String(), errBuf.String(), code
}
