package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/geofinder-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) summary(code string) *model.GameSummary {
	return &model.GameSummary{
		RoomCode: model.RoomCode(code),
		Rounds:   5,
		Standings: []model.FinalResult{
			{ID: "p1", Name: "Alice", Score: 12000},
			{ID: "p2", Name: "Bob", Score: 8000},
		},
		CompletedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndRecent() {
	s.Require().NoError(s.storage.SaveGameSummary(s.ctx, s.summary("AAAAAA")))

	recent, err := s.storage.RecentGames(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(recent, 1)
	s.Equal(model.RoomCode("AAAAAA"), recent[0].RoomCode)
	s.Len(recent[0].Standings, 2)
}

func (s *StorageSuite) TestRecentNewestFirst() {
	s.Require().NoError(s.storage.SaveGameSummary(s.ctx, s.summary("AAAAAA")))
	s.Require().NoError(s.storage.SaveGameSummary(s.ctx, s.summary("BBBBBB")))

	recent, err := s.storage.RecentGames(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(recent, 2)
	s.Equal(model.RoomCode("BBBBBB"), recent[0].RoomCode)
	s.Equal(model.RoomCode("AAAAAA"), recent[1].RoomCode)
}

func (s *StorageSuite) TestRecentLimit() {
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.storage.SaveGameSummary(s.ctx, s.summary(fmt.Sprintf("ROOM%02d", i))))
	}

	recent, err := s.storage.RecentGames(s.ctx, 3)
	s.Require().NoError(err)
	s.Len(recent, 3)
}

func (s *StorageSuite) TestRetentionCap() {
	for i := 0; i < maxSummaries+10; i++ {
		s.Require().NoError(s.storage.SaveGameSummary(s.ctx, s.summary(fmt.Sprintf("R%05d", i))))
	}

	recent, err := s.storage.RecentGames(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(recent, maxSummaries)
}

func (s *StorageSuite) TestRecentEmpty() {
	recent, err := s.storage.RecentGames(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(recent)
}
