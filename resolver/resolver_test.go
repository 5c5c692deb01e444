package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mattsre/idealaunch/config"
	"github.com/mattsre/idealaunch/testutil"
)

func testConfig(root string) config.Config {
	cfg := config.Default()
	cfg.VendorRoot = root
	cfg.ProductPrefix = "IntelliJ IDEA"
	cfg.ExeSubpath = "bin/idea64.exe"
	return cfg
}

func addInstall(t *testing.T, root, name string, withExe bool) {
	t.Helper()
	if withExe {
		testutil.FakeInstall(t, root, name, "bin/idea64.exe")
		return
	}
	binDir := filepath.Join(root, name, "bin")
	if err := os.MkdirAll(binDir, 0o750); err != nil {
		t.Fatalf("mkdir %s: %v", binDir, err)
	}
}

func TestResolvePicksHighestSorted(t *testing.T) {
	root := t.TempDir()
	addInstall(t, root, "IntelliJ IDEA 2023.2", true)
	addInstall(t, root, "IntelliJ IDEA 2024.3", true)
	addInstall(t, root, "IntelliJ IDEA 2024.1", true)

	path, ok := Resolve(testConfig(root))
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	want := filepath.Join(root, "IntelliJ IDEA 2024.3", "bin", "idea64.exe")
	if path != want {
		t.Errorf("Resolve() = %q, want %q", path, want)
	}
}

func TestResolveIgnoresOtherProducts(t *testing.T) {
	root := t.TempDir()
	addInstall(t, root, "IntelliJ IDEA 2024.1", true)
	// Sorts above every IDEA directory but must not be considered.
	addInstall(t, root, "WebStorm 2024.2", true)

	path, ok := Resolve(testConfig(root))
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	want := filepath.Join(root, "IntelliJ IDEA 2024.1", "bin", "idea64.exe")
	if path != want {
		t.Errorf("Resolve() = %q, want %q", path, want)
	}
}

func TestResolveNewestWithoutExecutable(t *testing.T) {
	root := t.TempDir()
	addInstall(t, root, "IntelliJ IDEA 2024.1", true)
	// Newest directory exists but its executable is missing; the resolver
	// confirms only the top candidate and reports not found.
	addInstall(t, root, "IntelliJ IDEA 2024.3", false)

	if _, ok := Resolve(testConfig(root)); ok {
		t.Error("Resolve() ok = true, want false when newest install lacks the executable")
	}
}

func TestResolveMissingRoot(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "does-not-exist"))
	if _, ok := Resolve(cfg); ok {
		t.Error("Resolve() ok = true for missing vendor root")
	}
}

func TestResolveEmptyRoot(t *testing.T) {
	cfg := testConfig(t.TempDir())
	if _, ok := Resolve(cfg); ok {
		t.Error("Resolve() ok = true for empty vendor root")
	}
}

func TestCandidatesDescending(t *testing.T) {
	root := t.TempDir()
	addInstall(t, root, "IntelliJ IDEA 2022.3", false)
	addInstall(t, root, "IntelliJ IDEA 2024.1", false)
	addInstall(t, root, "IntelliJ IDEA 2023.1", false)

	got := Candidates(testConfig(root))
	want := []string{
		filepath.Join(root, "IntelliJ IDEA 2024.1"),
		filepath.Join(root, "IntelliJ IDEA 2023.1"),
		filepath.Join(root, "IntelliJ IDEA 2022.3"),
	}
	if len(got) != len(want) {
		t.Fatalf("Candidates() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Candidates()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
