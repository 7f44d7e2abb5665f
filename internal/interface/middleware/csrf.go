package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogawp/todolist-api/pkg/response"
)

// CSRFHeader carries the anti-forgery token on state-changing
// session-guarded requests.
const CSRFHeader = "X-CSRF-Token"

// RequireCSRF must run after SessionAuth: it compares the header token
// against the one stored in the resolved session.
func RequireCSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil {
			response.AbortError(c, http.StatusUnauthorized, "missing session", nil)
			return
		}
		token := c.GetHeader(CSRFHeader)
		if token == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(sess.CSRFToken)) != 1 {
			response.AbortError(c, http.StatusForbidden, "csrf token mismatch", nil)
			return
		}
		c.Next()
	}
}
