// Package handlers holds the gin HTTP layer. Handlers validate input,
// pull the resolved actor from context, call a service, and map its
// error to exactly one of 401/403/404/422.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogawp/todolist-api/internal/application"
	"github.com/yogawp/todolist-api/internal/domain/entity"
	"github.com/yogawp/todolist-api/pkg/response"
)

// userJSON is the public representation: never leaks the hash.
type userJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toUserJSON(u *entity.User) userJSON {
	return userJSON{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000Z07:00"),
		UpdatedAt: u.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000000Z07:00"),
	}
}

type todoJSON struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toTodoJSON(t *entity.Todo) todoJSON {
	return todoJSON{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000Z07:00"),
		UpdatedAt: t.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000000Z07:00"),
	}
}

// writeServiceError maps taxonomy errors onto HTTP. Unknown errors
// become 500 without detail.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrUnauthenticated):
		response.Error[any](c, http.StatusUnauthorized, "unauthenticated", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed",
			map[string]string{"email": "has already been taken"})
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
