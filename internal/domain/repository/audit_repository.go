package repository

import (
	"context"

	"github.com/yogawp/todolist-api/internal/domain/entity"
)

// AuditRepository appends auth lifecycle events. Writes are best-effort;
// callers should not fail a request on audit errors.
type AuditRepository interface {
	Insert(ctx context.Context, a *entity.AuditLog) error
}
