// Package policy is the authorization engine: pure predicates over
// (actor, resource) pairs, evaluated before every resource operation.
// It never touches storage and never produces side effects.
package policy

import "github.com/yogawp/todolist-api/internal/domain/entity"

// IsOwnerOrAdmin is the single recurring predicate behind view, update
// and delete. Keep every ownership check routed through here.
func IsOwnerOrAdmin(actor *entity.User, ownerID string) bool {
	if actor == nil {
		return false
	}
	return actor.ID == ownerID || actor.Role == entity.RoleAdmin
}

// CanViewAnyTodo: listing is unconditional for any authenticated actor.
func CanViewAnyTodo(actor *entity.User) bool {
	return actor != nil
}

func CanViewTodo(actor *entity.User, todo *entity.Todo) bool {
	return IsOwnerOrAdmin(actor, todo.UserID)
}

func CanCreateTodo(actor *entity.User) bool {
	if actor == nil {
		return false
	}
	return actor.Role == entity.RoleUser || actor.Role == entity.RoleAdmin
}

func CanUpdateTodo(actor *entity.User, todo *entity.Todo) bool {
	return IsOwnerOrAdmin(actor, todo.UserID)
}

func CanDeleteTodo(actor *entity.User, todo *entity.Todo) bool {
	return IsOwnerOrAdmin(actor, todo.UserID)
}
