package entity

import "time"

// Session is server-side browser state. UserID is empty for anonymous
// sessions (issued so a pre-login client can obtain a CSRF token).
// The session never duplicates user data beyond the user id.
type Session struct {
	ID        string
	UserID    string
	CSRFToken string
	IP        string
	UserAgent string
	CreatedAt time.Time
}

func (s *Session) Authenticated() bool {
	return s.UserID != ""
}

// DefaultSessionTTL bounds how long an idle session survives in the store.
const DefaultSessionTTL = 24 * time.Hour
