package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.ProductPrefix != "IntelliJ IDEA" {
		t.Errorf("ProductPrefix = %q", cfg.ProductPrefix)
	}
	if cfg.ExeSubpath != "bin/idea64.exe" {
		t.Errorf("ExeSubpath = %q", cfg.ExeSubpath)
	}
	if cfg.VendorRoot == "" {
		t.Error("VendorRoot is empty")
	}
}

func TestDefaultVendorRootFromProgramFiles(t *testing.T) {
	t.Setenv("ProgramW6432", filepath.FromSlash("/fake/Program Files"))

	cfg := Default()
	want := filepath.Join(filepath.FromSlash("/fake/Program Files"), "JetBrains")
	if cfg.VendorRoot != want {
		t.Errorf("VendorRoot = %q, want %q", cfg.VendorRoot, want)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MenuLabel != Default().MenuLabel {
		t.Errorf("MenuLabel = %q, want default", cfg.MenuLabel)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "vendorRoot: /custom/root\nmenuLabel: Open here\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.VendorRoot != "/custom/root" {
		t.Errorf("VendorRoot = %q, want /custom/root", cfg.VendorRoot)
	}
	if cfg.MenuLabel != "Open here" {
		t.Errorf("MenuLabel = %q, want Open here", cfg.MenuLabel)
	}
	// Untouched keys keep their defaults.
	if cfg.ProductPrefix != "IntelliJ IDEA" {
		t.Errorf("ProductPrefix = %q, want default", cfg.ProductPrefix)
	}
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("productPrefix: PyCharm\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvProductPrefix, "GoLand")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ProductPrefix != "GoLand" {
		t.Errorf("ProductPrefix = %q, want GoLand (env override)", cfg.ProductPrefix)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\t this is not yaml {{"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil for malformed YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.VendorRoot = "/elsewhere"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.VendorRoot != "/elsewhere" {
		t.Errorf("VendorRoot = %q after round trip", loaded.VendorRoot)
	}
}

func TestExePath(t *testing.T) {
	cfg := Default()
	got := cfg.ExePath(filepath.FromSlash("/root/IntelliJ IDEA 2024.1"))
	want := filepath.Join(filepath.FromSlash("/root/IntelliJ IDEA 2024.1"), "bin", "idea64.exe")
	if got != want {
		t.Errorf("ExePath() = %q, want %q", got, want)
	}
}
