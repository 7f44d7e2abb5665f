package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/yogawp/todolist-api/internal/domain/entity"
	"github.com/yogawp/todolist-api/internal/domain/policy"
	repo "github.com/yogawp/todolist-api/internal/domain/repository"
	"github.com/yogawp/todolist-api/internal/infrastructure/search"
)

// TodoService runs every operation through the policy package before
// touching the store. Order is fixed: resolve → authorize → mutate.
type TodoService struct {
	Todos  repo.TodoRepository
	Index  *search.TodoIndex
	Logger *logrus.Logger
}

func NewTodoService(todos repo.TodoRepository, index *search.TodoIndex, logger *logrus.Logger) *TodoService {
	return &TodoService{Todos: todos, Index: index, Logger: logger}
}

// List is view-any: every authenticated actor sees all todos,
// newest first. Visibility is not restricted by ownership.
func (s *TodoService) List(ctx context.Context, actor *entity.User) ([]entity.Todo, error) {
	if !policy.CanViewAnyTodo(actor) {
		return nil, ErrForbidden
	}
	return s.Todos.List(ctx)
}

func (s *TodoService) Get(ctx context.Context, actor *entity.User, id string) (*entity.Todo, error) {
	t, err := s.Todos.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !policy.CanViewTodo(actor, t) {
		return nil, ErrForbidden
	}
	return t, nil
}

type CreateTodoInput struct {
	Title     string
	Completed bool
}

// Create auto-assigns ownership to the acting user.
func (s *TodoService) Create(ctx context.Context, actor *entity.User, in CreateTodoInput) (*entity.Todo, error) {
	if !policy.CanCreateTodo(actor) {
		return nil, ErrForbidden
	}
	t := &entity.Todo{Title: in.Title, Completed: in.Completed, UserID: actor.ID}
	if err := s.Todos.Create(ctx, t); err != nil {
		return nil, err
	}
	s.index(ctx, t)
	return t, nil
}

type UpdateTodoInput struct {
	Title     *string
	Completed *bool
}

func (s *TodoService) Update(ctx context.Context, actor *entity.User, id string, in UpdateTodoInput) (*entity.Todo, error) {
	t, err := s.Todos.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !policy.CanUpdateTodo(actor, t) {
		return nil, ErrForbidden
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if err := s.Todos.Update(ctx, t); err != nil {
		return nil, err
	}
	s.index(ctx, t)
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, actor *entity.User, id string) error {
	t, err := s.Todos.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if !policy.CanDeleteTodo(actor, t) {
		return ErrForbidden
	}
	if err := s.Todos.Delete(ctx, id); err != nil {
		return err
	}
	if s.Index != nil {
		_ = s.Index.DeleteTodo(ctx, id)
	}
	return nil
}

// Search queries the Elasticsearch title index; same visibility rule
// as List.
func (s *TodoService) Search(ctx context.Context, actor *entity.User, q string, size int) ([]map[string]any, error) {
	if !policy.CanViewAnyTodo(actor) {
		return nil, ErrForbidden
	}
	return s.Index.Search(ctx, q, size)
}

func (s *TodoService) index(ctx context.Context, t *entity.Todo) {
	if s.Index == nil {
		return
	}
	_ = s.Index.IndexTodo(ctx, t)
}
