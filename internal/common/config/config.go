package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dkurenkov/exercise-tracker/backend/internal/common/constants"
)

type TrackerConfig struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	MaxRequestSize  int64
	RateLimitPerSec float64
	RateLimitBurst  int
}

func LoadTrackerConfig() TrackerConfig {
	return TrackerConfig{
		HTTPPort:        getEnv("TRACKER_HTTP_PORT", constants.DefaultTrackerHTTPPort),
		RequestTimeout:  getDurationEnv("TRACKER_REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
		MaxRequestSize:  getInt64Env("TRACKER_MAX_REQUEST_SIZE", constants.DefaultMaxRequestSize),
		RateLimitPerSec: getFloatEnv("TRACKER_RATE_LIMIT_RPS", constants.DefaultRateLimitPerSec),
		RateLimitBurst:  getIntEnv("TRACKER_RATE_LIMIT_BURST", constants.DefaultRateLimitBurst),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getIntEnv(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getInt64Env(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return i
}

func getFloatEnv(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
