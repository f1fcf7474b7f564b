package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alovak/testcards/internal/cardgen"
	"github.com/joho/godotenv"
)

// Config is a configuration for the card generator server
type Config struct {
	HTTPAddr string
	LogLevel string
	// ExpiryTZ is an IANA timezone name for expiry computations (e.g., "Australia/Sydney").
	ExpiryTZ string
	// YearsAhead bounds how far in the future generated expiry dates fall.
	YearsAhead int
	// MaxBatch caps the number of cards returned by one request.
	MaxBatch        int
	ShutdownTimeout time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:        "localhost:9090",
		LogLevel:        "info",
		YearsAhead:      2,
		MaxBatch:        1000,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load reads configuration from the environment, after loading a .env file when one
// is present. Unset variables keep their DefaultConfig values.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	def := DefaultConfig()
	cfg := &Config{
		HTTPAddr:        getEnv("HTTP_ADDR", def.HTTPAddr),
		LogLevel:        getEnv("LOG_LEVEL", def.LogLevel),
		ExpiryTZ:        getEnv("EXPIRY_TZ", def.ExpiryTZ),
		YearsAhead:      getEnvAsInt("EXPIRY_YEARS_AHEAD", def.YearsAhead),
		MaxBatch:        getEnvAsInt("MAX_BATCH", def.MaxBatch),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", def.ShutdownTimeout),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("http address cannot be empty")
	}
	if !validLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	if c.ExpiryTZ != "" {
		if _, err := time.LoadLocation(c.ExpiryTZ); err != nil {
			return fmt.Errorf("invalid expiry timezone %q: %w", c.ExpiryTZ, err)
		}
	}
	if c.YearsAhead < 1 || c.YearsAhead > cardgen.MaxYearsAhead {
		return fmt.Errorf("expiry years ahead must be 1..%d, got %d", cardgen.MaxYearsAhead, c.YearsAhead)
	}
	if c.MaxBatch < 1 {
		return fmt.Errorf("max batch must be at least 1, got %d", c.MaxBatch)
	}
	return nil
}

// ExpiryLocation returns the configured expiry location, UTC when unset.
func (c *Config) ExpiryLocation() *time.Location {
	if c.ExpiryTZ == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.ExpiryTZ)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return d
}
