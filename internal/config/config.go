// Package config handles configuration loading from TOML files and
// environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"cosmobot/internal/constants"
)

// Config is the root configuration structure.
type Config struct {
	Session  SessionConfig  `toml:"session"`
	Ship     ShipConfig     `toml:"ship"`
	Provider ProviderConfig `toml:"provider"`
}

// SessionConfig holds the console defaults.
type SessionConfig struct {
	Mode      string  `toml:"mode"`
	CrewLog   bool    `toml:"crew_log"`
	EventRate float64 `toml:"event_rate"`
	Sound     bool    `toml:"sound"`
}

// ShipConfig holds the starting ship readout.
type ShipConfig struct {
	Sector string `toml:"sector"`
	Fuel   int    `toml:"fuel"`
}

// ProviderConfig holds completion provider settings. The API key is never
// read from the file; it comes from the environment only.
type ProviderConfig struct {
	Endpoint    string  `toml:"endpoint"`
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	APIKey      string  `toml:"-"`
}

// DefaultConfig returns a configuration with the fixed session defaults.
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			Mode:      "standard",
			CrewLog:   true,
			EventRate: constants.DefaultEventRate,
			Sound:     true,
		},
		Ship: ShipConfig{
			Sector: "Orion Drift",
			Fuel:   92,
		},
		Provider: ProviderConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.8,
		},
	}
}

// Load reads configuration from a TOML file and applies environment
// variable overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, err
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration.
func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); v != "" {
		cfg.Provider.APIKey = v
	}

	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.Provider.Model = v
	}

	if v := os.Getenv("COSMOBOT_OPENAI_ENDPOINT"); v != "" {
		cfg.Provider.Endpoint = v
	}

	if v := os.Getenv("COSMOBOT_MODE"); v != "" {
		cfg.Session.Mode = v
	}

	if v := os.Getenv("COSMOBOT_EVENT_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Session.EventRate = f
		}
	}

	if v := os.Getenv("COSMOBOT_CREW_LOG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Session.CrewLog = b
		}
	}

	if v := os.Getenv("COSMOBOT_SOUND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Session.Sound = b
		}
	}

	if v := os.Getenv("COSMOBOT_SECTOR"); v != "" {
		cfg.Ship.Sector = v
	}

	if v := os.Getenv("COSMOBOT_FUEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Ship.Fuel = n
		}
	}
}

// DataDir returns the path to the CosmoBot data directory (~/.cosmobot).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cosmobot"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
