package repository

import "errors"

// Sentinel errors shared by every store implementation.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)
