package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yogawp/todolist-api/internal/domain/entity"
	"github.com/yogawp/todolist-api/internal/domain/repository"
)

type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (r *AuditRepository) Insert(ctx context.Context, a *entity.AuditLog) error {
	md, err := json.Marshal(a.Metadata)
	if err != nil {
		md = []byte("{}")
	}

	// user_id column is a nullable uuid; empty string means unresolved actor
	var userID any
	if a.UserID != "" {
		userID = a.UserID
	}
	var email any
	if a.Email != "" {
		email = a.Email
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO audit_logs (user_id, email, action, ip, user_agent, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, userID, email, a.Action, a.IP, a.UserAgent, md)
	return err
}

var _ repository.AuditRepository = (*AuditRepository)(nil)
