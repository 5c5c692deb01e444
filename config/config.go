// Package config holds the launcher configuration: where IDE installations
// live, what the expected executable is called, and how the Explorer context
// menu entry is labeled. Values come from built-in defaults, an optional YAML
// file, and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mattsre/idealaunch/fileutil"
)

// Environment variable names for configuration overrides.
const (
	EnvVendorRoot    = "IDEALAUNCH_VENDOR_ROOT"
	EnvProductPrefix = "IDEALAUNCH_PRODUCT_PREFIX"
	EnvExeSubpath    = "IDEALAUNCH_EXE_SUBPATH"
	EnvMenuLabel     = "IDEALAUNCH_MENU_LABEL"
	EnvDownloadURL   = "IDEALAUNCH_DOWNLOAD_URL"
)

// Config is the explicit, injected configuration consumed by the resolver,
// the shell-menu manager, and the launcher. Fields are read-only after Load.
type Config struct {
	// VendorRoot is the parent directory holding side-by-side IDE installs.
	VendorRoot string `yaml:"vendorRoot"`

	// ProductPrefix filters installation directory names (e.g. "IntelliJ IDEA").
	ProductPrefix string `yaml:"productPrefix"`

	// ExeSubpath is the slash-separated executable path inside an installation.
	ExeSubpath string `yaml:"exeSubpath"`

	// MenuLabel is the context-menu caption shown by Explorer.
	MenuLabel string `yaml:"menuLabel"`

	// DownloadURL is opened by the download command when no install is found.
	DownloadURL string `yaml:"downloadUrl"`
}

// Default returns the built-in configuration. The vendor root is anchored at
// the 64-bit program-files directory on Windows and a conventional /opt path
// elsewhere.
func Default() Config {
	return Config{
		VendorRoot:    defaultVendorRoot(),
		ProductPrefix: "IntelliJ IDEA",
		ExeSubpath:    "bin/idea64.exe",
		MenuLabel:     "Open with IntelliJ IDEA",
		DownloadURL:   "https://www.jetbrains.com/idea/download/",
	}
}

func defaultVendorRoot() string {
	if pf := os.Getenv("ProgramW6432"); pf != "" {
		return filepath.Join(pf, "JetBrains")
	}
	return filepath.FromSlash("/opt/jetbrains")
}

// DefaultPath returns the default config file location under the user's
// config directory, or "" if that directory cannot be determined.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "idealaunch", "config.yaml")
}

// Load builds the effective configuration. A missing file is not an error;
// an unreadable or malformed file is. Environment variables win over the file,
// the file wins over defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	overrides := []struct {
		env    string
		target *string
	}{
		{EnvVendorRoot, &cfg.VendorRoot},
		{EnvProductPrefix, &cfg.ProductPrefix},
		{EnvExeSubpath, &cfg.ExeSubpath},
		{EnvMenuLabel, &cfg.MenuLabel},
		{EnvDownloadURL, &cfg.DownloadURL},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.target = v
		}
	}
}

// Save writes the configuration to path atomically, creating the parent
// directory if needed.
func (c Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return fmt.Errorf("no config path available")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return fileutil.AtomicWriteFile(path, data, fileutil.FilePermission)
}

// ExePath joins an installation directory with the configured executable
// subpath, localized for the current platform.
func (c Config) ExePath(installDir string) string {
	return filepath.Join(installDir, filepath.FromSlash(c.ExeSubpath))
}
