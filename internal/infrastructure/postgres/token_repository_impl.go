package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yogawp/todolist-api/internal/domain/entity"
	"github.com/yogawp/todolist-api/internal/domain/repository"
)

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

func (r *TokenRepository) Create(ctx context.Context, t *entity.PersonalAccessToken) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO personal_access_tokens (user_id, name, abilities, token_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, t.UserID, t.Name, t.Abilities, t.TokenHash)

	return row.Scan(&t.ID, &t.CreatedAt)
}

func (r *TokenRepository) GetByID(ctx context.Context, id string) (*entity.PersonalAccessToken, error) {
	t := &entity.PersonalAccessToken{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, abilities, token_hash, last_used_at, created_at
		FROM personal_access_tokens
		WHERE id = $1
	`, id)

	if err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Abilities, &t.TokenHash,
		&t.LastUsedAt, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TokenRepository) TouchLastUsed(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE personal_access_tokens SET last_used_at = now() WHERE id = $1
	`, id)
	return err
}

func (r *TokenRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM personal_access_tokens WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ repository.TokenRepository = (*TokenRepository)(nil)
