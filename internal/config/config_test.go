package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athlyze/athlyze/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                ":8080",
		DBPath:              "test.db",
		LogLevel:            "INFO",
		LogColors:           true,
		AnalysisWorkerCount: 2,
		AnalysisQueueSize:   64,
		ConfidenceThreshold: 0.2,
		MaxFrames:           20000,
		FetchTimeoutSeconds: 15,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{
			name:    "invalid level",
			level:   "INVALID",
			wantErr: true,
		},
		{
			name:    "empty level",
			level:   "",
			wantErr: true,
		},
		{
			name:    "lowercase valid level",
			level:   "debug",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			} else {
				// Lowercase should be accepted (parsed case-insensitively)
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_ValidLogLevels(t *testing.T) {
	validLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}

	for _, level := range validLevels {
		t.Run(level, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = level

			err := cfg.Validate()
			assert.NoError(t, err)
		})
	}
}

func TestValidate_InvalidWorkerCounts(t *testing.T) {
	tests := []struct {
		name    string
		workers int
	}{
		{
			name:    "zero workers",
			workers: 0,
		},
		{
			name:    "negative workers",
			workers: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.AnalysisWorkerCount = tt.workers

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "ANALYSIS_WORKER_COUNT")
		})
	}
}

func TestValidate_InvalidQueueSize(t *testing.T) {
	cfg := validConfig()
	cfg.AnalysisQueueSize = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ANALYSIS_QUEUE_SIZE")
}

func TestValidate_InvalidConfidenceThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		wantErr   bool
	}{
		{
			name:      "negative threshold",
			threshold: -0.1,
			wantErr:   true,
		},
		{
			name:      "threshold of one rejects every keypoint",
			threshold: 1.0,
			wantErr:   true,
		},
		{
			name:      "zero threshold keeps everything",
			threshold: 0,
			wantErr:   false,
		},
		{
			name:      "typical threshold",
			threshold: 0.2,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.ConfidenceThreshold = tt.threshold

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "CONFIDENCE_THRESHOLD")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		Addr:                "",
		DBPath:              "",
		LogLevel:            "INVALID",
		AnalysisWorkerCount: 0,
		AnalysisQueueSize:   0,
		ConfidenceThreshold: 2,
		MaxFrames:           0,
		FetchTimeoutSeconds: 0,
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "ANALYSIS_WORKER_COUNT")
	assert.Contains(t, errStr, "ANALYSIS_QUEUE_SIZE")
	assert.Contains(t, errStr, "CONFIDENCE_THRESHOLD")
	assert.Contains(t, errStr, "MAX_FRAMES")
	assert.Contains(t, errStr, "FETCH_TIMEOUT_SECONDS")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	// Save original values
	originalAddr := os.Getenv("ADDR")
	originalDBPath := os.Getenv("DB_PATH")

	defer func() {
		if originalAddr != "" {
			os.Setenv("ADDR", originalAddr)
		} else {
			os.Unsetenv("ADDR")
		}
		if originalDBPath != "" {
			os.Setenv("DB_PATH", originalDBPath)
		} else {
			os.Unsetenv("DB_PATH")
		}
	}()

	os.Setenv("ADDR", ":9090")
	os.Setenv("DB_PATH", "custom.db")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_PATH", "CONFIDENCE_THRESHOLD", "MAX_FRAMES"} {
		original := os.Getenv(key)
		os.Unsetenv(key)
		key := key
		defer func() {
			if original != "" {
				os.Setenv(key, original)
			}
		}()
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 0.2, cfg.ConfidenceThreshold)
	assert.Equal(t, 20000, cfg.MaxFrames)
}
