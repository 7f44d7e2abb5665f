package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/yogawp/todolist-api/internal/domain/entity"
	"github.com/yogawp/todolist-api/internal/domain/policy"
	repo "github.com/yogawp/todolist-api/internal/domain/repository"
	"github.com/yogawp/todolist-api/pkg/helpers"
)

// UserService covers the admin-only user resource. Deleting a user
// cascades to their todos and tokens at the schema level, so no
// ownership reference ever dangles.
type UserService struct {
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(users repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Logger: logger}
}

func (s *UserService) List(ctx context.Context, actor *entity.User) ([]entity.User, error) {
	if !policy.CanManageUsers(actor) {
		return nil, ErrForbidden
	}
	return s.Users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, actor *entity.User, id string) (*entity.User, error) {
	if !policy.CanManageUsers(actor) {
		return nil, ErrForbidden
	}
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return u, nil
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

func (s *UserService) Create(ctx context.Context, actor *entity.User, in CreateUserInput) (*entity.User, error) {
	if !policy.CanManageUsers(actor) {
		return nil, ErrForbidden
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Name: in.Name, Email: in.Email, Password: hash, Role: in.Role}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *entity.Role
}

func (s *UserService) Update(ctx context.Context, actor *entity.User, id string, in UpdateUserInput) (*entity.User, error) {
	if !policy.CanManageUsers(actor) {
		return nil, ErrForbidden
	}
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := helpers.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if err := s.Users.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, actor *entity.User, id string) error {
	if !policy.CanManageUsers(actor) {
		return ErrForbidden
	}
	if err := s.Users.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
