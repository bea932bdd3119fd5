// Package config provides configuration management for the battle core.
//
// This package handles environment variable loading with type-safe parsing,
// applies secure defaults, and validates configuration values.
//
// # Loading Configuration
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
// Logging:
//   - LOG_LEVEL: Logging verbosity (default: "info")
//
// Dex overrides:
//   - SPECIES_OVERRIDE_PATH: on-disk YAML file loaded over the embedded
//     species dex at startup (default: unset, no override)
//   - MOVE_OVERRIDE_PATH: on-disk YAML file loaded over the embedded move
//     dex at startup (default: unset, no override)
//
// Determinism:
//   - DETERMINISTIC_RNG: use a fixed-seed production RNG (default: false)
//   - RNG_SEED: seed used when DETERMINISTIC_RNG is true (default: 1)
//
// Retry policy (applied to dex override loads):
//   - RETRY_MAX_ATTEMPTS: Maximum attempts, including the first (default: 3)
//   - RETRY_INITIAL_DELAY: First retry delay (default: 50ms)
//   - RETRY_MAX_DELAY: Maximum retry delay (default: 5s)
//   - RETRY_BACKOFF_MULTIPLIER: Backoff factor (default: 1.5)
//
// # Validation
//
// All configuration values are validated on load:
//   - Log level must be one of debug/info/warn/error
//   - Retry configuration must be internally consistent
//
// # Retry Configuration
//
// GetRetryConfig returns a retry.RetryConfig that can be used directly
// with the retry package:
//
//	retryConfig := cfg.GetRetryConfig()
//	retrier := retry.NewRetrier(retryConfig)
package config
