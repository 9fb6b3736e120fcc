package memory

import (
	"context"
	"sync"

	"github.com/mcoot/geofinder-go/internal/model"
	"github.com/mcoot/geofinder-go/internal/storage"
)

// maxSummaries caps how many completed games are retained
const maxSummaries = 100

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	// newest first
	summaries []*model.GameSummary
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// SaveGameSummary records a completed game
func (s *Storage) SaveGameSummary(ctx context.Context, summary *model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summaries = append([]*model.GameSummary{summary}, s.summaries...)
	if len(s.summaries) > maxSummaries {
		s.summaries = s.summaries[:maxSummaries]
	}
	return nil
}

// RecentGames returns up to limit summaries, newest first
func (s *Storage) RecentGames(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.summaries) {
		limit = len(s.summaries)
	}
	result := make([]*model.GameSummary, limit)
	copy(result, s.summaries[:limit])
	return result, nil
}
