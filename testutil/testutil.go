// Package testutil provides common testing helpers: capturing stdout and
// creating temporary directory trees shaped like IDE installations.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the
// captured output. The original stdout is always restored.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = w

	// Buffered so the reader goroutine never leaks.
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}

// FakeInstall creates an installation directory named name under root with
// the executable at exeSubpath (slash-separated) inside it, and returns the
// executable's full path.
func FakeInstall(t *testing.T, root, name, exeSubpath string) string {
	t.Helper()

	exe := filepath.Join(root, name, filepath.FromSlash(exeSubpath))
	if err := os.MkdirAll(filepath.Dir(exe), 0o750); err != nil {
		t.Fatalf("Failed to create install dir: %v", err)
	}
	if err := os.WriteFile(exe, []byte("MZ"), 0o755); err != nil {
		t.Fatalf("Failed to write executable: %v", err)
	}
	return exe
}
