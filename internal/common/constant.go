// Package common contains shared constants and sentinel errors used across
// userauth components.
package common

const (
	// SaltLength is the length of the random alphanumeric salt generated
	// on every credential-set operation. Seven characters matches the
	// original deployment; it is short for a salt and kept only for
	// hash compatibility with existing rows.
	SaltLength = 7

	// TokenLength is the length of opaque session token strings.
	TokenLength = 32

	// AccessTokenHeaderName is the HTTP header that carries the admin
	// bearer token on /admin routes.
	AccessTokenHeaderName = "Authorization"
)
