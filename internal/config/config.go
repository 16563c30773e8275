package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the gitdraft configuration.
type Config struct {
	MaxChars  int    `json:"maxChars"`
	CommitOut string `json:"commitOut"`
	PROut     string `json:"prOut"`
	Base      string `json:"base,omitempty"`
	Redact    bool   `json:"redact"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		MaxChars:  30000,
		CommitOut: "prompt.md",
		PROut:     "pr_prompt.md",
		Redact:    true,
	}
}

// ConfigDir returns the platform-appropriate config directory for gitdraft.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitdraft"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "gitdraft"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gitdraft"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "gitdraft"), nil
	default:
		return filepath.Join(home, ".config", "gitdraft"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// fileConfig is the on-disk schema. Redact is a pointer so a file that
// never mentions the key can be told apart from an explicit false.
type fileConfig struct {
	MaxChars  int    `json:"maxChars"`
	CommitOut string `json:"commitOut"`
	PROut     string `json:"prOut"`
	Base      string `json:"base"`
	Redact    *bool  `json:"redact"`
}

// LoadFile reads the config file and overlays it on the defaults. A missing
// file yields the defaults unchanged.
func LoadFile() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if fc.MaxChars > 0 {
		cfg.MaxChars = fc.MaxChars
	}
	if fc.CommitOut != "" {
		cfg.CommitOut = fc.CommitOut
	}
	if fc.PROut != "" {
		cfg.PROut = fc.PROut
	}
	if fc.Base != "" {
		cfg.Base = fc.Base
	}
	if fc.Redact != nil {
		cfg.Redact = *fc.Redact
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only non-zero values
// should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("GITDRAFT_MAX_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxChars = n
		}
	}
	if v := os.Getenv("GITDRAFT_COMMIT_OUT"); v != "" {
		cfg.CommitOut = v
	}
	if v := os.Getenv("GITDRAFT_PR_OUT"); v != "" {
		cfg.PROut = v
	}
	if v := os.Getenv("GITDRAFT_BASE"); v != "" {
		cfg.Base = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["maxChars"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxChars = n
		}
	}
	if v, ok := overrides["base"]; ok && v != "" {
		cfg.Base = v
	}
}

// SetField sets a single config field by key name. Returns an error if the
// key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "maxChars":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxChars must be an integer: %w", err)
		}
		cfg.MaxChars = n
	case "commitOut":
		cfg.CommitOut = value
	case "prOut":
		cfg.PROut = value
	case "base":
		cfg.Base = value
	case "redact":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("redact must be a boolean: %w", err)
		}
		cfg.Redact = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
