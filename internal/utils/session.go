package utils

import "time"

// SessionData is the middleware-facing view of an auth session.
type SessionData struct {
	UserID    string
	ExpiresAt time.Time
}
