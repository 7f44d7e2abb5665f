package repository

import (
	"context"

	"github.com/yogawp/todolist-api/internal/domain/entity"
)

// TokenRepository persists personal access tokens. Tokens carry no
// expiry; revocation is row deletion (or cascade from the owning user).
type TokenRepository interface {
	Create(ctx context.Context, t *entity.PersonalAccessToken) error
	GetByID(ctx context.Context, id string) (*entity.PersonalAccessToken, error)
	TouchLastUsed(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
