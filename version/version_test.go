package version

import (
	"strings"
	"testing"

	"github.com/mattsre/idealaunch/testutil"
)

func TestNewDefaults(t *testing.T) {
	info := New("idealaunch")
	if info.Version != "0.0.0-dev" {
		t.Errorf("Version = %q", info.Version)
	}
	if info.Name != "idealaunch" {
		t.Errorf("Name = %q", info.Name)
	}
}

func TestString(t *testing.T) {
	info := New("idealaunch")
	s := info.String()
	if !strings.Contains(s, "idealaunch version 0.0.0-dev") {
		t.Errorf("String() = %q", s)
	}
}

func TestCommandQuiet(t *testing.T) {
	cmd := NewCommand(New("idealaunch"))
	cmd.SetArgs([]string{"--quiet"})

	out := testutil.CaptureOutput(t, cmd.Execute)
	if strings.TrimSpace(out) != "0.0.0-dev" {
		t.Errorf("quiet output = %q", out)
	}
}

func TestCommandFull(t *testing.T) {
	cmd := NewCommand(New("idealaunch"))

	out := testutil.CaptureOutput(t, cmd.Execute)
	for _, want := range []string{"Version", "Build Date", "Git Commit"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
