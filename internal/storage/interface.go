package storage

import (
	"context"

	"github.com/rpsgame/rpsgame-go/internal/model"
)

// Storage defines the interface for session persistence
type Storage interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, code model.SessionCode) (*model.Session, error)
	DeleteSession(ctx context.Context, code model.SessionCode) error
	SessionExists(ctx context.Context, code model.SessionCode) (bool, error)
}
