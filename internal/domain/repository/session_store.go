package repository

import (
	"context"
	"time"

	"github.com/yogawp/todolist-api/internal/domain/entity"
)

// SessionStore holds server-side session state keyed by session id.
// DeleteByUser removes whatever session the user currently holds, so a
// fresh login can rotate the identifier (session-fixation defense).
type SessionStore interface {
	Create(ctx context.Context, s *entity.Session, ttl time.Duration) error
	Get(ctx context.Context, sid string) (*entity.Session, error)
	Delete(ctx context.Context, sid string) error
	DeleteByUser(ctx context.Context, userID string) error
}
