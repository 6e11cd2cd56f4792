package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	// Coordinates for the weather widget; zero values disable it.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// TemperatureUnit is "celsius" or "fahrenheit".
	TemperatureUnit string `json:"temperatureUnit"`
}

// WeatherEnabled reports whether coordinates are configured.
func (c *Config) WeatherEnabled() bool {
	return c.Latitude != 0 || c.Longitude != 0
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		TemperatureUnit: "celsius",
	}
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			if saveErr := SaveConfig(path, &config); saveErr != nil {
				// Non-fatal: return defaults even if save fails
				return &config, nil
			}
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if config.TemperatureUnit == "" {
		config.TemperatureUnit = DefaultConfig().TemperatureUnit
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/apphub/config.json
func DefaultConfigFilePath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
