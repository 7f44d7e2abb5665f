package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yogawp/todolist-api/internal/domain/entity"
	"github.com/yogawp/todolist-api/internal/domain/repository"
)

type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) Create(ctx context.Context, t *entity.Todo) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO todos (title, completed, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, t.Title, t.Completed, t.UserID)

	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TodoRepository) GetByID(ctx context.Context, id string) (*entity.Todo, error) {
	t := &entity.Todo{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, completed, user_id, created_at, updated_at
		FROM todos
		WHERE id = $1
	`, id)

	if err := row.Scan(&t.ID, &t.Title, &t.Completed, &t.UserID,
		&t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// List returns every todo, most recently created first.
func (r *TodoRepository) List(ctx context.Context) ([]entity.Todo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, completed, user_id, created_at, updated_at
		FROM todos
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []entity.Todo{}
	for rows.Next() {
		var t entity.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.UserID,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *TodoRepository) Update(ctx context.Context, t *entity.Todo) error {
	t.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE todos
		SET title = $1, completed = $2, updated_at = $3
		WHERE id = $4
	`, t.Title, t.Completed, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
