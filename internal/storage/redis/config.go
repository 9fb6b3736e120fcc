package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// HistoryTTL bounds how long the game-history list is kept
	HistoryTTL time.Duration

	// MaxHistory caps the length of the game-history list
	MaxHistory int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		HistoryTTL:   7 * 24 * time.Hour,
		MaxHistory:   100,
	}
}
