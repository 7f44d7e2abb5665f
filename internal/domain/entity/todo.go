package entity

import "time"

// Todo belongs to exactly one user. UserID must reference an existing
// user at creation time; the schema cascades deletes from users.
type Todo struct {
	ID        string
	Title     string
	Completed bool
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
