package entity

import "time"

// AbilityAll is the unrestricted ability set granted to issued tokens.
const AbilityAll = "*"

// PersonalAccessToken is an opaque bearer credential bound to one user.
// Only the sha256 hash of the secret half is persisted; the plaintext
// form "<id>|<secret>" is shown once at issue time.
type PersonalAccessToken struct {
	ID         string
	UserID     string
	Name       string
	Abilities  string
	TokenHash  string
	LastUsedAt *time.Time
	CreatedAt  time.Time
}
