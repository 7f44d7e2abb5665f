package entity

import (
	"time"
)

// Role is a closed enum. Compare by equality, never by prefix or hierarchy.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ValidRole reports whether r is one of the two enumerated roles.
func ValidRole(r Role) bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash, never plaintext.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
