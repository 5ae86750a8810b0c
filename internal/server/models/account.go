// Package models defines the persisted and in-memory entities of the
// user directory.
package models

import "time"

// Account is a persisted directory entry. Email is unique across all live
// accounts and treated as an opaque, case-sensitive string. PasswordHash is
// the digest of password+salt; the two are always replaced together.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
}
