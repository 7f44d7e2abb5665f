package application

import "errors"

// Error taxonomy surfaced to handlers. Keep the three auth outcomes
// distinct: unauthenticated (401), forbidden (403) and not found (404)
// must never collapse into one another.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already taken")
)
