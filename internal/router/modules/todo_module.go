package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/yogawp/todolist-api/internal/interface/http"
)

// TodoModule registers the bearer-guarded todo resource. The guard and
// rate limits are applied group-wide by the registry.
type TodoModule struct {
	Handler *handlers.TodoHandler
}

func NewTodoModule(h *handlers.TodoHandler) *TodoModule {
	return &TodoModule{Handler: h}
}

func (m *TodoModule) Register(api *gin.RouterGroup, web *gin.RouterGroup) {
	todos := api.Group("/todos")
	{
		todos.GET("", m.Handler.List)
		todos.GET("/search", m.Handler.Search)
		todos.POST("", m.Handler.Create)
		todos.GET("/:id", m.Handler.Get)
		todos.PUT("/:id", m.Handler.Update)
		todos.PATCH("/:id", m.Handler.Update)
		todos.DELETE("/:id", m.Handler.Delete)
	}
}
