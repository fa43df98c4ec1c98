package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/misterclayt0n/loadout/internal/models"
	"github.com/misterclayt0n/loadout/internal/utils"
	"github.com/misterclayt0n/loadout/internal/volume"
)

type Config struct {
	DB       DBConfig          `toml:"database"`
	Training TrainingConfig    `toml:"training"`
	Log      LogConfig         `toml:"log"`
	Volume   models.VolumeTOML `toml:"volume"` // Per category/muscle group overrides.
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
	AuthToken        string `toml:"auth_token"`
}

type TrainingConfig struct {
	Interval   int     `toml:"interval"`
	DefaultRPE float64 `toml:"default_rpe"`
	Timezone   string  `toml:"timezone"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
	JSON  bool   `toml:"json"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Training: TrainingConfig{
			Interval:   models.DefaultTrainingInterval,
			DefaultRPE: models.DefaultRPE,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "loadout")
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultDBPath is the local database used when no connection string is configured.
func DefaultDBPath() (string, error) {
	dir, err := utils.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "loadout.db"), nil
}

// Load reads the configuration from path (or the default config path when
// empty), then applies .env and environment overrides:
//
//	TURSO_DATABASE_URL, TURSO_AUTH_TOKEN, LOADOUT_INTERVAL,
//	LOADOUT_DEFAULT_RPE, LOADOUT_TIMEZONE, LOADOUT_LOG_LEVEL,
//	DEV_MODE=true (local ./local.db)
//
// A missing config file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	// .env is optional.
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TURSO_DATABASE_URL"); v != "" {
		cfg.DB.ConnectionString = v
	}
	if v := os.Getenv("TURSO_AUTH_TOKEN"); v != "" {
		cfg.DB.AuthToken = v
	}
	if v := os.Getenv("LOADOUT_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Training.Interval = n
		}
	}
	if v := os.Getenv("LOADOUT_DEFAULT_RPE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Training.DefaultRPE = f
		}
	}
	if v := os.Getenv("LOADOUT_TIMEZONE"); v != "" {
		cfg.Training.Timezone = v
	}
	if v := os.Getenv("LOADOUT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db"
	}
}

func (c *Config) validate() error {
	if c.Training.Interval < 1 || c.Training.Interval > models.MaxTrainingInterval {
		return fmt.Errorf("training.interval must be between 1 and %d, got %d", models.MaxTrainingInterval, c.Training.Interval)
	}
	if c.Training.DefaultRPE < 0 || c.Training.DefaultRPE > 10 {
		return fmt.Errorf("training.default_rpe must be between 0 and 10, got %g", c.Training.DefaultRPE)
	}
	if c.Training.Timezone != "" {
		if _, err := time.LoadLocation(c.Training.Timezone); err != nil {
			return fmt.Errorf("training.timezone: %w", err)
		}
	}
	if _, err := c.VolumeTable(); err != nil {
		return err
	}
	return nil
}

// VolumeTable returns the default weekly volume table with the configured overrides.
func (c *Config) VolumeTable() (volume.Table, error) {
	return volume.DefaultTable().Merge(c.Volume)
}

// ConnectionString returns the configured DB URL, falling back to the local database file.
func (c *Config) ConnectionString() (string, error) {
	if c.DB.ConnectionString != "" {
		return c.DB.ConnectionString, nil
	}
	return DefaultDBPath()
}
