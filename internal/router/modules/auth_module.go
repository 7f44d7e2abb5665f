package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yogawp/todolist-api/internal/container"
	handlers "github.com/yogawp/todolist-api/internal/interface/http"
	"github.com/yogawp/todolist-api/internal/interface/middleware"
)

// AuthModule owns the browser surface: login, register, logout, CSRF
// token and named-token minting. Everything here runs on the session
// guard, never the bearer guard.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(api *gin.RouterGroup, web *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	web.POST("/login", loginLimiter, m.Handler.Login)
	web.POST("/register", registerLimiter, m.Handler.Register)
	web.GET("/token", m.Handler.CSRFToken)

	// Session-guarded, CSRF-checked
	sess := web.Group("/")
	sess.Use(middleware.SessionAuth(m.Handler.Auth, m.Handler.JWT), middleware.RequireCSRF())
	{
		sess.POST("/logout", m.Handler.Logout)
		sess.POST("/tokens/create", m.Handler.CreateToken)
	}
}
