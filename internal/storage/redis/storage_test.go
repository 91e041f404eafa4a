package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/rpsgame/rpsgame-go/internal/commitment"
	"github.com/rpsgame/rpsgame-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) testSession() *model.Session {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &model.Session{
		Code:  "ABC123",
		State: model.SessionStateRevealing,
		Round: 2,
		Players: []model.PlayerEntry{
			{
				Name:       "alice",
				Commitment: commitment.Commit("rock", "abhi"),
				Choice:     model.ChoiceRock,
				Phase:      model.PhaseRevealed,
				JoinedAt:   now,
			},
			{
				Name:     "bob",
				Phase:    model.PhaseAwaitingCommit,
				JoinedAt: now,
			},
		},
		Scores: map[string]int{"alice": 1, "bob": 0},
		Rounds: []model.RoundSummary{
			{
				Number:   1,
				Winner:   "alice",
				Choices:  map[string]model.Choice{"alice": model.ChoiceRock, "bob": model.ChoiceScissors},
				Deltas:   map[string]int{"alice": 1, "bob": 0},
				ScoredAt: now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *StorageSuite) TestSaveAndGetSessionRoundTrips() {
	session := s.testSession()

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "ABC123")
	s.Require().NoError(err)

	s.Equal(session.Code, retrieved.Code)
	s.Equal(session.State, retrieved.State)
	s.Equal(session.Round, retrieved.Round)
	s.Equal(session.Scores, retrieved.Scores)
	s.Require().Len(retrieved.Players, 2)
	s.Equal(commitment.Commit("rock", "abhi"), retrieved.Players[0].Commitment)
	s.Equal(model.ChoiceRock, retrieved.Players[0].Choice)
	s.True(retrieved.Players[1].Commitment.IsZero())
	s.Require().Len(retrieved.Rounds, 1)
	s.Equal("alice", retrieved.Rounds[0].Winner)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, s.testSession())

	err := s.storage.DeleteSession(s.ctx, "ABC123")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveSession(s.ctx, s.testSession())

	exists, err = s.storage.SessionExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestSessionExpiresAfterTTL() {
	_ = s.storage.SaveSession(s.ctx, s.testSession())

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSession(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrSessionNotFound)
}
