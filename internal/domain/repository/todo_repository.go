package repository

import (
	"context"

	"github.com/yogawp/todolist-api/internal/domain/entity"
)

// TodoRepository persists todos. List returns newest-first.
type TodoRepository interface {
	Create(ctx context.Context, t *entity.Todo) error
	GetByID(ctx context.Context, id string) (*entity.Todo, error)
	List(ctx context.Context) ([]entity.Todo, error)
	Update(ctx context.Context, t *entity.Todo) error
	Delete(ctx context.Context, id string) error
}
