package application

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yogawp/todolist-api/internal/domain/entity"
)

func testActor(role entity.Role) *entity.User {
	return &entity.User{ID: uuid.NewString(), Name: "actor", Email: uuid.NewString() + "@example.com", Role: role}
}

func TestTodoCreateAssignsOwner(t *testing.T) {
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo, nil, nil)
	actor := testActor(entity.RoleUser)

	created, err := svc.Create(context.Background(), actor, CreateTodoInput{Title: "buy milk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.UserID != actor.ID {
		t.Fatalf("owner = %s, want acting user %s", created.UserID, actor.ID)
	}
	if created.Completed {
		t.Fatal("new todo should default to not completed")
	}
	if created.ID == "" {
		t.Fatal("todo id not assigned")
	}
}

func TestTodoListVisibleToEveryone(t *testing.T) {
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo, nil, nil)
	alice := testActor(entity.RoleUser)
	bob := testActor(entity.RoleUser)

	if _, err := svc.Create(context.Background(), alice, CreateTodoInput{Title: "alice's"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// a different non-admin user still sees it in the list and detail
	todos, err := svc.List(context.Background(), bob)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 1 || todos[0].Title != "alice's" {
		t.Fatalf("list = %+v, want alice's todo visible", todos)
	}
	if _, err := svc.Get(context.Background(), bob, todos[0].ID); err != nil {
		t.Fatalf("get as non-owner: %v", err)
	}
}

func TestTodoListNewestFirst(t *testing.T) {
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo, nil, nil)
	actor := testActor(entity.RoleUser)

	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.Create(context.Background(), actor, CreateTodoInput{Title: title}); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}
	todos, err := svc.List(context.Background(), actor)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"third", "second", "first"}
	for i, w := range want {
		if todos[i].Title != w {
			t.Fatalf("position %d = %q, want %q", i, todos[i].Title, w)
		}
	}
}

func TestTodoUpdateOwnership(t *testing.T) {
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo, nil, nil)
	owner := testActor(entity.RoleUser)
	stranger := testActor(entity.RoleUser)
	admin := testActor(entity.RoleAdmin)

	created, err := svc.Create(context.Background(), owner, CreateTodoInput{Title: "original"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newTitle := "renamed"
	if _, err := svc.Update(context.Background(), stranger, created.ID, UpdateTodoInput{Title: &newTitle}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger update err = %v, want ErrForbidden", err)
	}

	updated, err := svc.Update(context.Background(), owner, created.ID, UpdateTodoInput{Title: &newTitle})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Title != "renamed" {
		t.Fatalf("title = %q, want renamed", updated.Title)
	}

	done := true
	updated, err = svc.Update(context.Background(), admin, created.ID, UpdateTodoInput{Completed: &done})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if !updated.Completed {
		t.Fatal("completed flag not updated")
	}
	if updated.Title != "renamed" {
		t.Fatalf("partial update clobbered title: %q", updated.Title)
	}
}

func TestTodoDeleteOwnership(t *testing.T) {
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo, nil, nil)
	owner := testActor(entity.RoleUser)
	stranger := testActor(entity.RoleUser)
	admin := testActor(entity.RoleAdmin)

	created, err := svc.Create(context.Background(), owner, CreateTodoInput{Title: "keep me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// a non-owner non-admin gets 403 and the todo survives
	if err := svc.Delete(context.Background(), stranger, created.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger delete err = %v, want ErrForbidden", err)
	}
	if repo.count() != 1 {
		t.Fatal("todo removed despite forbidden delete")
	}

	// an admin may remove it
	if err := svc.Delete(context.Background(), admin, created.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if repo.count() != 0 {
		t.Fatal("todo still present after admin delete")
	}
}

func TestTodoErrorsOrder(t *testing.T) {
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo, nil, nil)
	actor := testActor(entity.RoleUser)

	missing := uuid.NewString()
	if _, err := svc.Get(context.Background(), actor, missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get missing err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), actor, missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing err = %v, want ErrNotFound", err)
	}
	title := "x"
	if _, err := svc.Update(context.Background(), actor, missing, UpdateTodoInput{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing err = %v, want ErrNotFound", err)
	}
}
