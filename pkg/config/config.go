// Package config provides configuration management for the battle core.
// It handles environment variable loading, validation, and provides secure
// defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"pokebattle-core/pkg/retry"
	"pokebattle-core/pkg/rng"

	"github.com/sirupsen/logrus"
)

// Config represents process-level configuration with environment variable
// support. Config is thread-safe; all field access should be done through
// getter methods when used concurrently, or by holding the mutex directly.
type Config struct {
	// mu provides thread-safe access to configuration fields when the Config
	// instance is shared across goroutines. Use RLock for reads and Lock for writes.
	mu sync.RWMutex `json:"-"`

	// LogLevel controls the logging verbosity (debug, info, warn, error)
	LogLevel string `json:"log_level"`

	// SpeciesOverridePath, if set, points at a YAML file loaded over the
	// embedded species dex at startup. Empty means no override.
	SpeciesOverridePath string `json:"species_override_path"`

	// MoveOverridePath, if set, points at a YAML file loaded over the
	// embedded move dex at startup. Empty means no override.
	MoveOverridePath string `json:"move_override_path"`

	// DeterministicRNG forces battle engines constructed by the caller's
	// wiring code to use a fixed-seed production RNG instead of one seeded
	// from wall-clock time, so a run can be reproduced exactly.
	DeterministicRNG bool `json:"deterministic_rng"`

	// RNGSeed is the fixed seed used when DeterministicRNG is true.
	RNGSeed int64 `json:"rng_seed"`

	// Retry configuration for the dex override loaders

	// RetryEnabled turns on validation of the retry fields below. It does not
	// switch retries off: GetRetryConfig returns the same policy either way.
	RetryEnabled bool `json:"retry_enabled"`

	// RetryMaxAttempts is the maximum number of retry attempts (including initial attempt)
	RetryMaxAttempts int `json:"retry_max_attempts"`

	// RetryInitialDelay is the initial delay before the first retry
	RetryInitialDelay time.Duration `json:"retry_initial_delay"`

	// RetryMaxDelay is the maximum delay between retries
	RetryMaxDelay time.Duration `json:"retry_max_delay"`

	// RetryBackoffMultiplier is the multiplier for exponential backoff (typically 2.0)
	RetryBackoffMultiplier float64 `json:"retry_backoff_multiplier"`

	// RetryJitterPercent is the maximum percentage of jitter to add (0-100)
	RetryJitterPercent int `json:"retry_jitter_percent"`
}

// Load creates a new Config instance by reading from environment variables
// and applying secure defaults. It validates all configuration values and
// returns an error if any required values are missing or invalid.
func Load() (*Config, error) {
	logrus.WithFields(logrus.Fields{
		"function": "Load",
		"package":  "config",
	}).Debug("entering Load")

	config := &Config{
		LogLevel:            getEnvAsString("LOG_LEVEL", "info"),
		SpeciesOverridePath: getEnvAsString("SPECIES_OVERRIDE_PATH", ""),
		MoveOverridePath:    getEnvAsString("MOVE_OVERRIDE_PATH", ""),
		DeterministicRNG:    getEnvAsBool("DETERMINISTIC_RNG", false),
		RNGSeed:             getEnvAsInt64("RNG_SEED", 1),

		RetryEnabled:           getEnvAsBool("RETRY_ENABLED", true),
		RetryMaxAttempts:       getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay:      getEnvAsDuration("RETRY_INITIAL_DELAY", 50*time.Millisecond),
		RetryMaxDelay:          getEnvAsDuration("RETRY_MAX_DELAY", 5*time.Second),
		RetryBackoffMultiplier: getEnvAsFloat64("RETRY_BACKOFF_MULTIPLIER", 1.5),
		RetryJitterPercent:     getEnvAsInt("RETRY_JITTER_PERCENT", 5),
	}

	logrus.WithFields(logrus.Fields{
		"function":  "Load",
		"package":   "config",
		"log_level": config.LogLevel,
	}).Debug("configuration loaded, starting validation")

	if err := config.validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Load",
			"package":  "config",
			"error":    err,
		}).Error("configuration validation failed")
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":  "Load",
		"package":   "config",
		"log_level": config.LogLevel,
	}).Debug("exiting Load - configuration successfully loaded and validated")

	return config, nil
}

// validate checks that all configuration values are valid and consistent.
func (c *Config) validate() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}

	if err := c.validateRetryConfig(); err != nil {
		return err
	}

	return nil
}

// validateLogLevel ensures log level is one of the supported values.
func (c *Config) validateLogLevel() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	found := false
	for _, level := range validLogLevels {
		if strings.ToLower(c.LogLevel) == level {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("log level must be one of %v, got %s", validLogLevels, c.LogLevel)
	}

	return nil
}

// validateRetryConfig ensures retry policy parameters are valid when enabled.
func (c *Config) validateRetryConfig() error {
	if c.RetryEnabled {
		if c.RetryMaxAttempts < 1 {
			return fmt.Errorf("retry max attempts must be at least 1 when retry is enabled")
		}
		if c.RetryInitialDelay < 0 {
			return fmt.Errorf("retry initial delay must be non-negative when retry is enabled")
		}
		if c.RetryMaxDelay < c.RetryInitialDelay {
			return fmt.Errorf("retry max delay must be greater than or equal to initial delay when retry is enabled")
		}
		if c.RetryBackoffMultiplier <= 1.0 {
			return fmt.Errorf("retry backoff multiplier must be greater than 1.0 when retry is enabled")
		}
		if c.RetryJitterPercent < 0 || c.RetryJitterPercent > 100 {
			return fmt.Errorf("retry jitter percent must be between 0 and 100 when retry is enabled")
		}
	}

	return nil
}

// HasSpeciesOverride reports whether an on-disk species override is
// configured. Thread-safe.
func (c *Config) HasSpeciesOverride() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SpeciesOverridePath != ""
}

// HasMoveOverride reports whether an on-disk move override is configured.
// Thread-safe.
func (c *Config) HasMoveOverride() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.MoveOverridePath != ""
}

// GetRetryConfig creates a retry.RetryConfig from the current configuration.
// This converts the application-level retry settings into the format
// expected by the retry package.
func (c *Config) GetRetryConfig() retry.RetryConfig {
	return retry.RetryConfig{
		MaxAttempts:       c.RetryMaxAttempts,
		InitialDelay:      c.RetryInitialDelay,
		MaxDelay:          c.RetryMaxDelay,
		BackoffMultiplier: c.RetryBackoffMultiplier,
		JitterMaxPercent:  c.RetryJitterPercent,
		RetryableErrors:   []error{},
	}
}

// NewRNG builds the production RNG a caller should construct its battles
// with: a fixed-seed stream when DeterministicRNG is set (so a run can be
// replayed exactly), or a wall-clock-seeded one otherwise. Thread-safe.
func (c *Config) NewRNG() rng.RNG {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.DeterministicRNG {
		return rng.NewWithSeed(c.RNGSeed)
	}
	return rng.New()
}

// Helper functions for environment variable parsing with type safety and defaults

func getEnvAsString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
