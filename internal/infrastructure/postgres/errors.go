package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yogawp/todolist-api/internal/domain/repository"
)

// Re-exported so this package's own code reads naturally.
var (
	ErrNotFound  = repository.ErrNotFound
	ErrDuplicate = repository.ErrDuplicate
)

// 23505 = unique_violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
