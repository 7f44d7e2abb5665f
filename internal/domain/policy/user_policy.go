package policy

import "github.com/yogawp/todolist-api/internal/domain/entity"

// CanManageUsers gates every user-resource action: list, view, create,
// update and delete are all admin-only.
func CanManageUsers(actor *entity.User) bool {
	return actor != nil && actor.Role == entity.RoleAdmin
}
