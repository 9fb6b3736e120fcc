package storage

import (
	"context"

	"github.com/mcoot/geofinder-go/internal/model"
)

// Storage persists completed-game summaries. Live room state is
// deliberately process-local and never stored here.
type Storage interface {
	// SaveGameSummary records a completed game
	SaveGameSummary(ctx context.Context, summary *model.GameSummary) error

	// RecentGames returns up to limit summaries, newest first
	RecentGames(ctx context.Context, limit int) ([]*model.GameSummary, error)
}
