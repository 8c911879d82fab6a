package config

import (
	"errors"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Store struct {
		Path       string `toml:"path"`
		DropTables bool   `toml:"drop_tables"` // development reset only
	} `toml:"store"`

	Journal struct {
		MirrorDSN string `toml:"mirror_dsn"` // optional postgres DSN
	} `toml:"journal"`

	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Store.Path) == "" {
		cfg.Store.Path = "mykabu.db"
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = "info"
	}
}

func validate(cfg *Config) error {
	switch cfg.Log.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return errors.New("log.level must be one of trace, debug, info, warn, error")
	}
	return nil
}
