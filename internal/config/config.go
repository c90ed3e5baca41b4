// Package config loads bbtree settings from defaults, an optional YAML
// file and BBTREE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds settings shared by all commands. CLI flags override it.
type Config struct {
	DotBinary string   `yaml:"dot_binary"`
	Formats   []string `yaml:"formats"`
	DBPath    string   `yaml:"db_path"`
	LogLevel  string   `yaml:"log_level"`
	RankDir   string   `yaml:"rankdir"`
	Legend    bool     `yaml:"legend"`
}

// DefaultConfig returns the built-in defaults. Run history is disabled
// until a database path is configured.
func DefaultConfig() Config {
	return Config{
		DotBinary: "dot",
		Formats:   []string{"pdf"},
		LogLevel:  "info",
		RankDir:   "TB",
	}
}

// DefaultPath is ~/.bbtree/config.yaml, or "" if the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bbtree", "config.yaml")
}

// Load builds the effective configuration. An explicitly named file
// (BBTREE_CONFIG) must exist; the default file is optional.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, explicit := os.LookupEnv("BBTREE_CONFIG")
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := LoadFile(&cfg, path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return cfg, err
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto cfg.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BBTREE_DOT"); v != "" {
		cfg.DotBinary = v
	}
	if v := os.Getenv("BBTREE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("BBTREE_FORMATS"); v != "" {
		var formats []string
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				formats = append(formats, f)
			}
		}
		if len(formats) > 0 {
			cfg.Formats = formats
		}
	}
	if v := os.Getenv("BBTREE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("BBTREE_RANKDIR"); v != "" {
		cfg.RankDir = v
	}
	if v := os.Getenv("BBTREE_LEGEND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Legend = b
		}
	}
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
