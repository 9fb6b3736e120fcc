package geopool

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/mcoot/geofinder-go/internal/dependencies/random"
	"github.com/mcoot/geofinder-go/internal/model"
)

// Service supplies the candidate pool of locations and selection
// strategies for building a game's round sequence
type Service struct {
	mu     sync.RWMutex
	pool   []model.Location
	random random.Random
	logger *slog.Logger
}

// New creates a geopool service seeded with the default location pool
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		pool:   DefaultPool(),
		random: rnd,
		logger: logger.With(slog.String("component", "geopool")),
	}
}

// LoadFromFile replaces the pool with locations from a JSON file
func (s *Service) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading location file: %w", err)
	}

	var locations []model.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return fmt.Errorf("parsing location file: %w", err)
	}
	if len(locations) == 0 {
		return model.ErrEmptyLocationPool
	}

	s.mu.Lock()
	s.pool = locations
	s.mu.Unlock()

	s.logger.Info("location pool loaded",
		slog.String("path", path),
		slog.Int("locations", len(locations)))
	return nil
}

// PoolSize returns the number of locations currently in the pool
func (s *Service) PoolSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pool)
}

// SelectRounds returns a random ordered sequence of n locations. When n
// exceeds the pool size the shuffled sequence repeats, so the result
// always has exactly n entries.
func (s *Service) SelectRounds(n int) ([]model.Location, error) {
	if n <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	shuffled := append([]model.Location(nil), s.pool...)
	s.mu.RUnlock()

	if len(shuffled) == 0 {
		return nil, model.ErrEmptyLocationPool
	}

	s.random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	selected := make([]model.Location, n)
	for i := 0; i < n; i++ {
		selected[i] = shuffled[i%len(shuffled)]
	}
	return selected, nil
}

// SelectWeighted returns n locations drawn without replacement, with each
// location's draw probability proportional to its category's weight.
// Categories absent from weights get weight 1; a category can be excluded
// with weight 0. Like SelectRounds, the sequence repeats if the eligible
// pool is smaller than n.
func (s *Service) SelectWeighted(n int, weights map[string]int) ([]model.Location, error) {
	if n <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	candidates := make([]model.Location, 0, len(s.pool))
	for _, loc := range s.pool {
		if categoryWeight(weights, loc.Category) > 0 {
			candidates = append(candidates, loc)
		}
	}
	s.mu.RUnlock()

	if len(candidates) == 0 {
		return nil, model.ErrEmptyLocationPool
	}

	selected := make([]model.Location, 0, n)
	remaining := append([]model.Location(nil), candidates...)
	for len(selected) < n {
		if len(remaining) == 0 {
			remaining = append([]model.Location(nil), candidates...)
		}

		total := 0
		for _, loc := range remaining {
			total += categoryWeight(weights, loc.Category)
		}

		r := s.random.Intn(total)
		idx := 0
		for i, loc := range remaining {
			r -= categoryWeight(weights, loc.Category)
			if r < 0 {
				idx = i
				break
			}
		}

		selected = append(selected, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return selected, nil
}

func categoryWeight(weights map[string]int, category string) int {
	w, ok := weights[category]
	if !ok {
		return 1
	}
	if w < 0 {
		return 0
	}
	return w
}
