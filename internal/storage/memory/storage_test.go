package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rpsgame/rpsgame-go/internal/model"
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

func (s *StorageSuite) testSession(code model.SessionCode) *model.Session {
	return &model.Session{
		Code:      code,
		State:     model.SessionStateJoining,
		Round:     1,
		Scores:    map[string]int{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.testSession("ABC123")
	session.Players = []model.PlayerEntry{
		{Name: "alice", Phase: model.PhaseAwaitingCommit},
	}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(session.Code, retrieved.Code)
	s.Len(retrieved.Players, 1)
	s.Equal("alice", retrieved.Players[0].Name)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, s.testSession("ABC123"))

	err := s.storage.DeleteSession(s.ctx, "ABC123")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteMissingSessionIsNoOp() {
	s.NoError(s.storage.DeleteSession(s.ctx, "NOPE"))
}

func (s *StorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveSession(s.ctx, s.testSession("ABC123"))

	exists, err = s.storage.SessionExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.True(exists)
}
