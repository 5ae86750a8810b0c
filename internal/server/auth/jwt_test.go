package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminToken_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateAdminToken(secret, time.Hour)
	require.NoError(t, err)

	assert.NoError(t, VerifyAdminToken(token, secret))
}

func TestVerifyAdminToken_WrongSecret(t *testing.T) {
	token, err := GenerateAdminToken([]byte("right"), time.Hour)
	require.NoError(t, err)

	assert.Error(t, VerifyAdminToken(token, []byte("wrong")))
}

func TestVerifyAdminToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateAdminToken(secret, -time.Minute)
	require.NoError(t, err)

	assert.Error(t, VerifyAdminToken(token, secret))
}

func TestVerifyAdminToken_MissingAdminClaim(t *testing.T) {
	secret := []byte("test-secret")

	plain := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Admin: false,
	})
	token, err := plain.SignedString(secret)
	require.NoError(t, err)

	assert.ErrorIs(t, VerifyAdminToken(token, secret), ErrNotAdmin)
}

func TestVerifyAdminToken_Garbage(t *testing.T) {
	assert.Error(t, VerifyAdminToken("not-a-jwt", []byte("secret")))
}
