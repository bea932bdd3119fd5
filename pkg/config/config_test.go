package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		validate    func(t *testing.T, config *Config)
	}{
		{
			name:        "default configuration",
			envVars:     map[string]string{},
			expectError: false,
			validate: func(t *testing.T, config *Config) {
				assert.Equal(t, "info", config.LogLevel)
				assert.Equal(t, "", config.SpeciesOverridePath)
				assert.Equal(t, "", config.MoveOverridePath)
				assert.False(t, config.DeterministicRNG)
				assert.Equal(t, int64(1), config.RNGSeed)
				assert.True(t, config.RetryEnabled)
				assert.Equal(t, 3, config.RetryMaxAttempts)
			},
		},
		{
			name: "custom configuration from environment",
			envVars: map[string]string{
				"LOG_LEVEL":             "debug",
				"SPECIES_OVERRIDE_PATH": "/tmp/species.yaml",
				"MOVE_OVERRIDE_PATH":    "/tmp/moves.yaml",
				"DETERMINISTIC_RNG":     "true",
				"RNG_SEED":              "42",
			},
			expectError: false,
			validate: func(t *testing.T, config *Config) {
				assert.Equal(t, "debug", config.LogLevel)
				assert.Equal(t, "/tmp/species.yaml", config.SpeciesOverridePath)
				assert.Equal(t, "/tmp/moves.yaml", config.MoveOverridePath)
				assert.True(t, config.DeterministicRNG)
				assert.Equal(t, int64(42), config.RNGSeed)
			},
		},
		{
			name: "invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL": "invalid",
			},
			expectError: true,
		},
		{
			name: "retry max attempts below minimum",
			envVars: map[string]string{
				"RETRY_MAX_ATTEMPTS": "0",
			},
			expectError: true,
		},
		{
			name: "retry backoff multiplier too low",
			envVars: map[string]string{
				"RETRY_BACKOFF_MULTIPLIER": "1.0",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTestEnv()

			for key, value := range tt.envVars {
				os.Setenv(key, value)
				defer os.Unsetenv(key)
			}

			config, err := Load()

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, config)
			} else {
				require.NoError(t, err)
				require.NotNil(t, config)
				if tt.validate != nil {
					tt.validate(t, config)
				}
			}
		})
	}
}

func TestConfig_HasSpeciesOverride(t *testing.T) {
	c := &Config{SpeciesOverridePath: "species.yaml"}
	assert.True(t, c.HasSpeciesOverride())

	c2 := &Config{}
	assert.False(t, c2.HasSpeciesOverride())
}

func TestConfig_HasMoveOverride(t *testing.T) {
	c := &Config{MoveOverridePath: "moves.yaml"}
	assert.True(t, c.HasMoveOverride())

	c2 := &Config{}
	assert.False(t, c2.HasMoveOverride())
}

func TestConfig_GetRetryConfig(t *testing.T) {
	c := &Config{
		RetryMaxAttempts:       4,
		RetryInitialDelay:      10 * time.Millisecond,
		RetryMaxDelay:          1 * time.Second,
		RetryBackoffMultiplier: 2.0,
		RetryJitterPercent:     5,
	}

	rc := c.GetRetryConfig()
	assert.Equal(t, 4, rc.MaxAttempts)
	assert.Equal(t, 10*time.Millisecond, rc.InitialDelay)
	assert.Equal(t, 1*time.Second, rc.MaxDelay)
	assert.Equal(t, 2.0, rc.BackoffMultiplier)
	assert.Equal(t, 5, rc.JitterMaxPercent)
}

func TestGetEnvHelpers(t *testing.T) {
	clearTestEnv()

	t.Run("getEnvAsString", func(t *testing.T) {
		assert.Equal(t, "default", getEnvAsString("TEST_STRING", "default"))

		os.Setenv("TEST_STRING", "custom")
		defer os.Unsetenv("TEST_STRING")
		assert.Equal(t, "custom", getEnvAsString("TEST_STRING", "default"))
	})

	t.Run("getEnvAsInt", func(t *testing.T) {
		assert.Equal(t, 42, getEnvAsInt("TEST_INT", 42))

		os.Setenv("TEST_INT", "100")
		defer os.Unsetenv("TEST_INT")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT", 42))

		os.Setenv("TEST_INT_INVALID", "not-a-number")
		defer os.Unsetenv("TEST_INT_INVALID")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_INVALID", 42))
	})

	t.Run("getEnvAsInt64", func(t *testing.T) {
		assert.Equal(t, int64(42), getEnvAsInt64("TEST_INT64", 42))

		os.Setenv("TEST_INT64", "9223372036854775807")
		defer os.Unsetenv("TEST_INT64")
		assert.Equal(t, int64(9223372036854775807), getEnvAsInt64("TEST_INT64", 42))
	})

	t.Run("getEnvAsBool", func(t *testing.T) {
		assert.Equal(t, true, getEnvAsBool("TEST_BOOL", true))

		testCases := []struct {
			value    string
			expected bool
		}{
			{"true", true},
			{"false", false},
			{"1", true},
			{"0", false},
			{"TRUE", true},
			{"FALSE", false},
		}

		for _, tc := range testCases {
			os.Setenv("TEST_BOOL", tc.value)
			assert.Equal(t, tc.expected, getEnvAsBool("TEST_BOOL", false), "value: %s", tc.value)
		}
		os.Unsetenv("TEST_BOOL")
	})

	t.Run("getEnvAsDuration", func(t *testing.T) {
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION", 5*time.Minute))

		os.Setenv("TEST_DURATION", "2h30m")
		defer os.Unsetenv("TEST_DURATION")
		assert.Equal(t, 2*time.Hour+30*time.Minute, getEnvAsDuration("TEST_DURATION", 5*time.Minute))
	})

	t.Run("getEnvAsFloat64", func(t *testing.T) {
		assert.Equal(t, 1.5, getEnvAsFloat64("TEST_FLOAT", 1.5))

		os.Setenv("TEST_FLOAT", "2.75")
		defer os.Unsetenv("TEST_FLOAT")
		assert.Equal(t, 2.75, getEnvAsFloat64("TEST_FLOAT", 1.5))
	})
}

// clearTestEnv removes all environment variables that might affect tests
func clearTestEnv() {
	testVars := []string{
		"LOG_LEVEL", "SPECIES_OVERRIDE_PATH", "MOVE_OVERRIDE_PATH",
		"DETERMINISTIC_RNG", "RNG_SEED",
		"RETRY_ENABLED", "RETRY_MAX_ATTEMPTS", "RETRY_INITIAL_DELAY",
		"RETRY_MAX_DELAY", "RETRY_BACKOFF_MULTIPLIER", "RETRY_JITTER_PERCENT",
		"TEST_STRING", "TEST_INT", "TEST_INT_INVALID", "TEST_INT64", "TEST_BOOL",
		"TEST_DURATION", "TEST_FLOAT",
	}

	for _, v := range testVars {
		os.Unsetenv(v)
	}
}
