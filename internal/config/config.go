package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// configuration path is given.
const DefaultConfigFile = ".bumpfile.yaml"

// EnvManifestMode overrides manifest.mode when set.
const EnvManifestMode = "BUMPFILE_MANIFEST_MODE"

const (
	// ModeEdit rewrites manifests in memory.
	ModeEdit = "edit"

	// ModeDelegate hands manifest updates to an external tool.
	ModeDelegate = "delegate"
)

// ManifestConfig controls how TOML manifests are written.
type ManifestConfig struct {
	Mode    string   `yaml:"mode,omitempty"`
	Command []string `yaml:"command,omitempty"`
	Timeout string   `yaml:"timeout,omitempty"`
}

// Config is the main configuration structure for bumpfile.
type Config struct {
	Manifest *ManifestConfig `yaml:"manifest,omitempty"`
	Theme    string          `yaml:"theme,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Manifest: &ManifestConfig{Mode: ModeEdit},
	}
}

// TimeoutDuration parses Timeout. An empty value yields zero.
func (m *ManifestConfig) TimeoutDuration() (time.Duration, error) {
	if m == nil || m.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(m.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid manifest.timeout %q: %w", m.Timeout, err)
	}
	return d, nil
}

// LoadConfigFn is the loader used by the CLI. Tests may replace it.
var LoadConfigFn = loadConfig

// loadConfig reads path, or DefaultConfigFile when path is empty. A missing
// default file is not an error; a missing explicit file is.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg = &Config{}
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %q: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// fall through with defaults
	default:
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	if mode := strings.TrimSpace(os.Getenv(EnvManifestMode)); mode != "" {
		if cfg.Manifest == nil {
			cfg.Manifest = &ManifestConfig{}
		}
		cfg.Manifest.Mode = mode
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Manifest == nil {
		cfg.Manifest = &ManifestConfig{}
	}
	if cfg.Manifest.Mode == "" {
		cfg.Manifest.Mode = ModeEdit
	}
}
