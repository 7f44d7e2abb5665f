package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yogawp/todolist-api/internal/domain/entity"
)

// Gin context keys set by the auth guards.
const (
	CtxActorKey   = "actor"
	CtxUserIDKey  = "userID"
	CtxSessionKey = "session"
)

// ActorFrom returns the resolved user, or nil when no guard ran.
func ActorFrom(c *gin.Context) *entity.User {
	if v, ok := c.Get(CtxActorKey); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}

// SessionFrom returns the resolved session (session guard only).
func SessionFrom(c *gin.Context) *entity.Session {
	if v, ok := c.Get(CtxSessionKey); ok {
		if s, ok := v.(*entity.Session); ok {
			return s
		}
	}
	return nil
}
