// Package common defines shared constants and sentinel errors used across
// the client and server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Account errors.
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserDoesNotExist  = errors.New("user does not exist")

	// Credential errors.
	ErrIncorrectCredentials = errors.New("incorrect email or password")

	// Token errors. ErrInvalidToken means the token is live but does not
	// authorize the requested account; ErrTokenDoesNotExist means the
	// token is not in the registry at all.
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenDoesNotExist = errors.New("token does not exist")

	// Internal errors. Never shown to clients verbatim.
	ErrLockUnavailable = errors.New("token registry lock unavailable")
	ErrStore           = errors.New("store error")
	ErrorInternal      = errors.New("internal error")
)
