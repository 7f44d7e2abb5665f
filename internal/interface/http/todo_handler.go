package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yogawp/todolist-api/internal/application"
	"github.com/yogawp/todolist-api/internal/interface/middleware"
	"github.com/yogawp/todolist-api/pkg/response"
	"github.com/yogawp/todolist-api/pkg/validation"
)

type TodoHandler struct {
	Svc    *application.TodoService
	Logger *logrus.Logger
}

func NewTodoHandler(svc *application.TodoService, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{Svc: svc, Logger: logger}
}

// List handles GET /api/todos. Visibility is view-any: every
// authenticated actor sees the full list, newest first.
func (h *TodoHandler) List(c *gin.Context) {
	todos, err := h.Svc.List(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]todoJSON, 0, len(todos))
	for i := range todos {
		out = append(out, toTodoJSON(&todos[i]))
	}
	response.Success(c, http.StatusOK, out, "todos", nil)
}

func (h *TodoHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toTodoJSON(t), "todo", nil)
}

type createTodoRequest struct {
	Title     string `json:"title" binding:"required,max=255"`
	Completed bool   `json:"completed"`
}

func (h *TodoHandler) Create(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), middleware.ActorFrom(c), application.CreateTodoInput{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toTodoJSON(t), "todo created", nil)
}

type updateTodoRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=255"`
	Completed *bool   `json:"completed"`
}

// Update serves both PUT and PATCH with identical semantics.
func (h *TodoHandler) Update(c *gin.Context) {
	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), application.UpdateTodoInput{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toTodoJSON(t), "todo updated", nil)
}

func (h *TodoHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// Search handles GET /api/todos/search?q=…&size=… via Elasticsearch.
func (h *TodoHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), middleware.ActorFrom(c), q, size)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}
