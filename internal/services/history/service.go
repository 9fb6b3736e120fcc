package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/geofinder-go/internal/model"
	"github.com/mcoot/geofinder-go/internal/storage"
)

// recordTimeout bounds a single summary write
const recordTimeout = 5 * time.Second

// Service records completed games and serves the recent-game read path.
// Writes happen off the caller's goroutine so rooms never block on
// storage I/O.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new history service
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger.With(slog.String("component", "history")),
	}
}

// RecordGame persists a completed game asynchronously. Failures are
// logged and otherwise ignored; history is best effort.
func (s *Service) RecordGame(summary *model.GameSummary) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := s.storage.SaveGameSummary(ctx, summary); err != nil {
			s.logger.Error("failed to record game",
				slog.String("room", string(summary.RoomCode)),
				slog.Any("error", err))
			return
		}
		s.logger.Info("game recorded",
			slog.String("room", string(summary.RoomCode)),
			slog.Int("rounds", summary.Rounds),
			slog.Int("players", len(summary.Standings)))
	}()
}

// RecentGames returns up to limit summaries, newest first
func (s *Service) RecentGames(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	return s.storage.RecentGames(ctx, limit)
}
