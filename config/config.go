package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort              string
	LogLevel                string
	Currency                string
	ResultCacheTTLMinutes   string
	ResponseCacheTTLMinutes string
	AdapterTimeoutMs        string
	AdapterMaxRetries       string
	AdapterBackoffMs        string
	RateLimitPerMinute      string
}

// AdapterConfig holds the retry and transport budget shared by every
// retailer adapter.
type AdapterConfig struct {
	AttemptTimeout time.Duration `json:"attempt_timeout"`
	MaxRetries     int           `json:"max_retries"`
	BackoffUnit    time.Duration `json:"backoff_unit"`
	PolitenessGap  time.Duration `json:"politeness_gap"`
}

// DefaultAdapterConfig returns the default adapter retry/transport budget
func DefaultAdapterConfig() *AdapterConfig {
	return &AdapterConfig{
		AttemptTimeout: 5 * time.Second,
		MaxRetries:     3,
		BackoffUnit:    250 * time.Millisecond,
		PolitenessGap:  50 * time.Millisecond,
	}
}

// GetResultCacheTTL returns the comparison result cache TTL from environment or default
func (c *Config) GetResultCacheTTL() time.Duration {
	return minutesOrDefault(c.ResultCacheTTLMinutes, 30*time.Minute, "RESULT_CACHE_TTL_MINUTES")
}

// GetResponseCacheTTL returns the HTTP response cache TTL from environment or default.
// Configured independently from the result cache TTL.
func (c *Config) GetResponseCacheTTL() time.Duration {
	return minutesOrDefault(c.ResponseCacheTTLMinutes, 30*time.Minute, "RESPONSE_CACHE_TTL_MINUTES")
}

// GetAdapterConfig returns the adapter budget with environment overrides applied
func (c *Config) GetAdapterConfig() *AdapterConfig {
	cfg := DefaultAdapterConfig()

	if ms, err := strconv.Atoi(c.AdapterTimeoutMs); err == nil && ms > 0 {
		cfg.AttemptTimeout = time.Duration(ms) * time.Millisecond
	}
	if retries, err := strconv.Atoi(c.AdapterMaxRetries); err == nil && retries >= 0 {
		cfg.MaxRetries = retries
	}
	if ms, err := strconv.Atoi(c.AdapterBackoffMs); err == nil && ms > 0 {
		cfg.BackoffUnit = time.Duration(ms) * time.Millisecond
	}

	return cfg
}

// GetRateLimitPerMinute returns the inbound request budget per client per minute
func (c *Config) GetRateLimitPerMinute() int {
	if limit, err := strconv.Atoi(c.RateLimitPerMinute); err == nil && limit > 0 {
		return limit
	}
	return 60
}

func minutesOrDefault(value string, fallback time.Duration, name string) time.Duration {
	if value == "" {
		return fallback
	}

	minutes, err := strconv.Atoi(value)
	if err != nil || minutes <= 0 {
		logrus.Warnf("Invalid %s value: %s, using default %v", name, value, fallback)
		return fallback
	}

	return time.Duration(minutes) * time.Minute
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using system environment variables")
	}

	return &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		Currency:                getEnv("CURRENCY", "ZAR"),
		ResultCacheTTLMinutes:   getEnv("RESULT_CACHE_TTL_MINUTES", "30"),
		ResponseCacheTTLMinutes: getEnv("RESPONSE_CACHE_TTL_MINUTES", "30"),
		AdapterTimeoutMs:        getEnv("ADAPTER_TIMEOUT_MS", "5000"),
		AdapterMaxRetries:       getEnv("ADAPTER_MAX_RETRIES", "3"),
		AdapterBackoffMs:        getEnv("ADAPTER_BACKOFF_MS", "250"),
		RateLimitPerMinute:      getEnv("RATE_LIMIT_PER_MINUTE", "60"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
