// Package auth implements the bearer tokens that gate the administrative
// HTTP surface. These are transport-layer credentials, distinct from the
// opaque session tokens the core issues: the core performs no admin-role
// check of its own and trusts the transport to have done it.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotAdmin is returned for a well-formed token without the admin claim.
var ErrNotAdmin = errors.New("token does not carry the admin claim")

// Claims are the JWT claims carried by admin tokens.
type Claims struct {
	jwt.RegisteredClaims
	Admin bool `json:"admin"`
}

// GenerateAdminToken mints an HS256-signed admin token with the given
// validity. Typically issued out-of-band (see cmd/admintoken) and presented
// on /admin routes.
func GenerateAdminToken(secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		Admin: true,
	})

	return token.SignedString(secretKey)
}

// VerifyAdminToken parses and validates an admin token. It returns nil
// only for a correctly signed, unexpired token carrying the admin claim.
func VerifyAdminToken(tokenString string, secretKey []byte) error {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrTokenUnverifiable
	}
	if !claims.Admin {
		return ErrNotAdmin
	}
	return nil
}
