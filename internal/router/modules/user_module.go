package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/yogawp/todolist-api/internal/interface/http"
)

// UserModule registers the user resource. The admin check lives in the
// service layer (policy.CanManageUsers), so every route responds 403
// to non-admin actors rather than 404.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(api *gin.RouterGroup, web *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("", m.Handler.List)
		users.POST("", m.Handler.Create)
		users.GET("/:id", m.Handler.Get)
		users.PUT("/:id", m.Handler.Update)
		users.PATCH("/:id", m.Handler.Update)
		users.DELETE("/:id", m.Handler.Delete)
	}
}
