package entity

import "time"

// Audit actions recorded by the auth lifecycle.
const (
	AuditLogin       = "login"
	AuditLoginFailed = "login_failed"
	AuditLogout      = "logout"
	AuditRegister    = "register"
	AuditTokenIssued = "token_issued"
)

// AuditLog is an append-only record of an auth event. UserID may be
// empty when the actor could not be resolved (failed logins).
type AuditLog struct {
	ID        string
	UserID    string
	Email     string
	Action    string
	IP        string
	UserAgent string
	Metadata  map[string]any
	CreatedAt time.Time
}
