package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/geofinder-go/internal/dependencies/clock"
	"github.com/mcoot/geofinder-go/internal/dependencies/random"
	"github.com/mcoot/geofinder-go/internal/dependencies/scheduler"
	"github.com/mcoot/geofinder-go/internal/game"
	"github.com/mcoot/geofinder-go/internal/services/geopool"
	"github.com/mcoot/geofinder-go/internal/services/history"
	"github.com/mcoot/geofinder-go/internal/services/scoring"
	"github.com/mcoot/geofinder-go/internal/storage"
	"github.com/mcoot/geofinder-go/internal/storage/memory"
	redisstorage "github.com/mcoot/geofinder-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Score curve constants
const (
	CurveLinear      = "linear"
	CurveExponential = "exponential"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock     clock.Clock
	Random    random.Random
	Scheduler scheduler.Scheduler

	// Services
	ScoringService *scoring.Service
	GeopoolService *geopool.Service
	HistoryService *history.Service
	Registry       *game.Registry
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the history backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// LocationsPath optionally replaces the built-in location pool
	LocationsPath string
	// ScoreCurve selects the distance curve ("linear" or "exponential")
	// If empty, defaults to "linear"
	ScoreCurve string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	var curve scoring.Curve
	switch cfg.ScoreCurve {
	case "", CurveLinear:
		curve = scoring.DefaultLinearCurve()
	case CurveExponential:
		curve = scoring.DefaultExponentialCurve()
	default:
		return nil, errors.New("invalid ScoreCurve: must be 'linear' or 'exponential'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), scheduler.New(), curve, logger)

	if cfg.LocationsPath != "" {
		if err := app.GeopoolService.LoadFromFile(cfg.LocationsPath); err != nil {
			return nil, fmt.Errorf("loading location pool: %w", err)
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, sched scheduler.Scheduler, curve scoring.Curve, logger *slog.Logger) *App {
	scoringService := scoring.New(curve)
	geopoolService := geopool.New(rnd, logger)
	historyService := history.New(store, logger)

	registry := game.NewRegistry(game.Deps{
		Selector:  geopoolService,
		Scorer:    scoringService,
		Recorder:  historyService,
		Clock:     clk,
		Random:    rnd,
		Scheduler: sched,
		Logger:    logger,
	})

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Scheduler:      sched,
		ScoringService: scoringService,
		GeopoolService: geopoolService,
		HistoryService: historyService,
		Registry:       registry,
	}
}
