package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration. Every field has a
// working default so the tool runs with no config file at all; the
// generate/serve commands may override individual fields from flags.
type Config struct {
	// Timezone is the IANA zone applied to timed events whose row does
	// not carry its own timezone column.
	Timezone string `yaml:"timezone"`

	// ProdID identifies the feed publisher in the calendar header.
	ProdID string `yaml:"prodid"`

	// UIDDomain is the suffix appended to derived event identifiers,
	// e.g. "youruni" yields "a1b2...@youruni".
	UIDDomain string `yaml:"uid_domain"`

	// Sheet is the worksheet to read. Empty means the first sheet.
	Sheet string `yaml:"sheet"`

	// Output is the path the generated feed is written to.
	Output string `yaml:"output"`

	// Listen is the HTTP listen address for serve mode.
	Listen string `yaml:"listen"`

	// RefreshCron is a cron expression controlling how often serve
	// mode regenerates the feed from the source workbook.
	RefreshCron string `yaml:"refresh"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Timezone:    "Australia/Sydney",
		ProdID:      "-//YourUni//Class Feeds 1.0//EN",
		UIDDomain:   "youruni",
		Output:      "calendar.ics",
		Listen:      "127.0.0.1:8080",
		RefreshCron: "*/30 * * * *",
		LogLevel:    "info",
	}
}

// Normalize fills in missing values so partially-filled configs still
// behave correctly.
func (c *Config) Normalize() {
	def := Default()
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	if c.ProdID == "" {
		c.ProdID = def.ProdID
	}
	if c.UIDDomain == "" {
		c.UIDDomain = def.UIDDomain
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.Listen == "" {
		c.Listen = def.Listen
	}
	if c.RefreshCron == "" {
		c.RefreshCron = def.RefreshCron
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = def.LogLevel
	}
}

// Load reads configuration from the given YAML path. An empty path
// returns defaults without touching the filesystem. A missing file is
// created on first run with default contents.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the configuration atomically (temp file + rename) with
// 0600 permissions, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".classfeed-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
