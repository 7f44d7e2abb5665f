package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yogawp/todolist-api/internal/application"
	"github.com/yogawp/todolist-api/pkg/response"
)

// TokenAuth is the bearer guard for /api routes. The credential is an
// opaque "<id>|<secret>" token checked against the token table; there
// is no expiry, only revocation by row deletion.
func TokenAuth(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		plain, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || plain == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		user, _, err := auth.ResolveToken(c.Request.Context(), plain)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid bearer token", nil)
			return
		}
		c.Set(CtxActorKey, user)
		c.Set(CtxUserIDKey, user.ID)
		c.Next()
	}
}
