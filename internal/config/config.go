package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config is the server's environment-driven configuration
type Config struct {
	Host     string     `env:"HOST" envDefault:""`
	Port     int        `env:"PORT" envDefault:"8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	// StorageType selects the game-history backend: memory or redis
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL" envDefault:""`

	// LocationsPath optionally replaces the built-in location pool with
	// a JSON file
	LocationsPath string `env:"LOCATIONS_PATH" envDefault:""`

	// ScoreCurve selects the distance scoring curve: linear or exponential
	ScoreCurve string `env:"SCORE_CURVE" envDefault:"linear"`
}

// Load parses configuration from the environment
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
