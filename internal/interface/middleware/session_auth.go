package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogawp/todolist-api/internal/application"
	"github.com/yogawp/todolist-api/pkg/helpers"
	"github.com/yogawp/todolist-api/pkg/response"
)

// SessionAuth is the cookie guard. It verifies the signed session
// cookie, resolves the sid against the server-side store, and requires
// the session to be bound to a user. Independent from TokenAuth: the
// two guards never substitute for each other.
func SessionAuth(auth *application.AuthService, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || cookie == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing session", nil)
			return
		}
		claims, err := jwt.ParseSessionToken(cookie)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid session", nil)
			return
		}
		sess, user, err := auth.ResolveSession(c.Request.Context(), claims.SessionID)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "session not found", nil)
			return
		}
		if user == nil {
			// anonymous session: fine for /token, not for guarded routes
			response.AbortError(c, http.StatusUnauthorized, "unauthenticated", nil)
			return
		}
		c.Set(CtxSessionKey, sess)
		c.Set(CtxActorKey, user)
		c.Set(CtxUserIDKey, user.ID)
		c.Next()
	}
}
