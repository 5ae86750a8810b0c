package models

import "time"

// Token is an ephemeral session credential held only in the in-memory
// registry. It does not survive a process restart; every restart
// invalidates all sessions, which is accepted behavior.
type Token struct {
	Value     string
	AccountID int64
	IssuedAt  time.Time
}
