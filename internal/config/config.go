// Package config provides client configuration loading and management.
package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds client configuration values loaded from file or environment variables.
type Config struct {
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	StoragePath        string `mapstructure:"STORAGE_PATH"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`

	SuggestionLimit           int `mapstructure:"SUGGESTION_LIMIT"`
	SuggestionRefillThreshold int `mapstructure:"SUGGESTION_REFILL_THRESHOLD"`
	SuggestionRefillDelayMS   int `mapstructure:"SUGGESTION_REFILL_DELAY_MS"`
	SuggestionProbeMaxID      int `mapstructure:"SUGGESTION_PROBE_MAX_ID"`
}

// HTTPTimeout returns the transport timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// SuggestionRefillDelay returns the refill debounce delay as a duration.
func (c *Config) SuggestionRefillDelay() time.Duration {
	return time.Duration(c.SuggestionRefillDelayMS) * time.Millisecond
}

// LoadConfig loads client configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if errors.As(err, &notFoundErr) {
			log.Println("Config file not found; using environment variables and defaults")
		} else {
			return nil, err
		}
	}

	// Set default values
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("STORAGE_PATH", defaultStoragePath())
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SUGGESTION_LIMIT", 5)
	viper.SetDefault("SUGGESTION_REFILL_THRESHOLD", 3)
	viper.SetDefault("SUGGESTION_REFILL_DELAY_MS", 500)
	viper.SetDefault("SUGGESTION_PROBE_MAX_ID", 20)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".wandersphere", "viewer.json")
	}
	return filepath.Join(home, ".wandersphere", "viewer.json")
}
