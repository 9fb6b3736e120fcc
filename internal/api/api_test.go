package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/geofinder-go/internal/api/handler"
	"github.com/mcoot/geofinder-go/internal/api/response"
	"github.com/mcoot/geofinder-go/internal/dependencies/clock"
	"github.com/mcoot/geofinder-go/internal/dependencies/random"
	"github.com/mcoot/geofinder-go/internal/dependencies/scheduler"
	"github.com/mcoot/geofinder-go/internal/game"
	"github.com/mcoot/geofinder-go/internal/model"
	"github.com/mcoot/geofinder-go/internal/services/geopool"
	"github.com/mcoot/geofinder-go/internal/services/history"
	"github.com/mcoot/geofinder-go/internal/services/scoring"
	"github.com/mcoot/geofinder-go/internal/storage/memory"
	"github.com/mcoot/geofinder-go/internal/testutil"
)

type APISuite struct {
	suite.Suite
	router  http.Handler
	store   *memory.Storage
	history *history.Service
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	logger := testutil.NopLogger()
	rnd := random.New()
	s.store = memory.New()
	s.history = history.New(s.store, logger)

	registry := game.NewRegistry(game.Deps{
		Selector:  geopool.New(rnd, logger),
		Scorer:    scoring.New(scoring.DefaultLinearCurve()),
		Recorder:  s.history,
		Clock:     clock.New(),
		Random:    rnd,
		Scheduler: scheduler.New(),
		Logger:    logger,
	})

	s.router = NewRouter(RouterConfig{
		Logger:   logger,
		Registry: registry,
		History:  s.history,
	})
}

func (s *APISuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *APISuite) TestHealth() {
	rec := s.get("/api/v1/health")
	s.Equal(http.StatusOK, rec.Code)

	var body handler.HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("ok", body.Status)
	s.False(body.Time.IsZero())
	s.Zero(body.ActiveRooms)
}

func (s *APISuite) TestRecentGamesEmpty() {
	rec := s.get("/api/v1/games/recent")
	s.Equal(http.StatusOK, rec.Code)

	var body handler.RecentGamesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.NotNil(body.Games)
	s.Empty(body.Games)
}

func (s *APISuite) TestRecentGamesNewestFirst() {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, code := range []model.RoomCode{"AAAAAA", "BBBBBB", "CCCCCC"} {
		s.Require().NoError(s.store.SaveGameSummary(ctx, &model.GameSummary{
			RoomCode:    code,
			Rounds:      5,
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	rec := s.get("/api/v1/games/recent?limit=2")
	s.Equal(http.StatusOK, rec.Code)

	var body handler.RecentGamesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.Games, 2)
	s.Equal(model.RoomCode("CCCCCC"), body.Games[0].RoomCode)
	s.Equal(model.RoomCode("BBBBBB"), body.Games[1].RoomCode)
}

func (s *APISuite) TestRecentGamesBadLimit() {
	for _, raw := range []string{"0", "-3", "abc"} {
		rec := s.get("/api/v1/games/recent?limit=" + raw)
		s.Equal(http.StatusBadRequest, rec.Code, "limit=%s", raw)

		var body response.ErrorBody
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.NotEmpty(body.Error)
	}
}

func (s *APISuite) TestUnknownRouteIs404() {
	rec := s.get("/api/v1/nope")
	s.Equal(http.StatusNotFound, rec.Code)
}
