package constants

import "time"

const (
	GeneratedIDLength = 7

	DefaultMaxRequestSize = 1 << 20

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	DefaultTrackerHTTPPort = "8080"
	DefaultRequestTimeout  = 5 * time.Second

	DefaultRateLimitPerSec   = 50.0
	DefaultRateLimitBurst    = 100
	RateLimitCleanupInterval = 5 * time.Minute

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28

	// Calendar dates: ISO-like on input, day-of-week form on output.
	ExerciseDateLayout = "2006-01-02"
	ResponseDateLayout = "Mon Jan 02 2006"
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"
