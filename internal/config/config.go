package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                string
	DBPath              string
	LogLevel            string
	LogColors           bool
	AnalysisWorkerCount int
	AnalysisQueueSize   int
	ConfidenceThreshold float64
	MaxFrames           int
	ProfileDir          string
	FetchTimeoutSeconds int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8080"),
		DBPath:              envOr("DB_PATH", "file:athlyze.db"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		LogColors:           envBoolOr("LOG_COLORS", true),
		AnalysisWorkerCount: envIntOr("ANALYSIS_WORKER_COUNT", 2),
		AnalysisQueueSize:   envIntOr("ANALYSIS_QUEUE_SIZE", 64),
		ConfidenceThreshold: envFloatOr("CONFIDENCE_THRESHOLD", 0.2),
		MaxFrames:           envIntOr("MAX_FRAMES", 20000),
		ProfileDir:          envOr("PROFILE_DIR", ""),
		FetchTimeoutSeconds: envIntOr("FETCH_TIMEOUT_SECONDS", 15),
	}
}

// Validate checks the configuration for values that would prevent the
// service from starting. All problems are reported in a single error.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}
	if c.AnalysisWorkerCount < 1 {
		problems = append(problems, "ANALYSIS_WORKER_COUNT must be at least 1")
	}
	if c.AnalysisQueueSize < 1 {
		problems = append(problems, "ANALYSIS_QUEUE_SIZE must be at least 1")
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold >= 1 {
		problems = append(problems, "CONFIDENCE_THRESHOLD must be in [0, 1)")
	}
	if c.MaxFrames < 1 {
		problems = append(problems, "MAX_FRAMES must be at least 1")
	}
	if c.FetchTimeoutSeconds < 1 {
		problems = append(problems, "FETCH_TIMEOUT_SECONDS must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %g", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
