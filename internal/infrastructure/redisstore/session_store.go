// Package redisstore implements the server-side session store on Redis.
// Sessions live under "session:<sid>" as hashes; "user:session:<uid>"
// points at the user's current sid so login can destroy the previous
// session before minting a new identifier.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yogawp/todolist-api/internal/domain/entity"
	"github.com/yogawp/todolist-api/internal/domain/repository"
)

type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func sessionKey(sid string) string   { return "session:" + sid }
func userIndexKey(uid string) string { return "user:session:" + uid }

func (s *SessionStore) Create(ctx context.Context, sess *entity.Session, ttl time.Duration) error {
	key := sessionKey(sess.ID)
	fields := map[string]any{
		"user_id":    sess.UserID,
		"csrf_token": sess.CSRFToken,
		"ip":         sess.IP,
		"user_agent": sess.UserAgent,
		"created_at": sess.CreatedAt.UTC().Format(time.RFC3339Nano),
	}

	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, ttl)
	if sess.UserID != "" {
		pipe.Set(ctx, userIndexKey(sess.UserID), sess.ID, ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *SessionStore) Get(ctx context.Context, sid string) (*entity.Session, error) {
	data, err := s.rdb.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, repository.ErrNotFound
	}
	sess := &entity.Session{
		ID:        sid,
		UserID:    data["user_id"],
		CSRFToken: data["csrf_token"],
		IP:        data["ip"],
		UserAgent: data["user_agent"],
	}
	if t, err := time.Parse(time.RFC3339Nano, data["created_at"]); err == nil {
		sess.CreatedAt = t
	}
	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	sess, err := s.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	pipe := s.rdb.Pipeline()
	pipe.Del(ctx, sessionKey(sid))
	if sess.UserID != "" {
		pipe.Del(ctx, userIndexKey(sess.UserID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteByUser drops whatever session the user currently holds.
func (s *SessionStore) DeleteByUser(ctx context.Context, userID string) error {
	sid, err := s.rdb.Get(ctx, userIndexKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}
	pipe := s.rdb.Pipeline()
	pipe.Del(ctx, sessionKey(sid))
	pipe.Del(ctx, userIndexKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}

var _ repository.SessionStore = (*SessionStore)(nil)
