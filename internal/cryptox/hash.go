// Package cryptox implements the password hashing utility: a deterministic
// salted digest used to store and verify credentials.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/avasiljevs/userauth/internal/common"
)

// Supported hash algorithm names, selectable via server config.
const (
	AlgSHA256   = "sha256"
	AlgArgon2id = "argon2id"
)

// argon2id parameters (OWASP-recommended).
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
)

// Hasher computes a deterministic digest of password+salt. Same inputs must
// always produce the same output; different salts must produce different
// outputs with overwhelming probability.
type Hasher interface {
	Hash(password, salt string) string
}

// SHA256Hasher digests sha256(password || salt) as uppercase hex. This is
// the storage format of existing deployments; keep it unless every stored
// credential is re-hashed.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// Argon2idHasher derives an argon2id key from the password using the
// account salt. Slower than SHA256Hasher on purpose; still deterministic
// for a fixed (password, salt) pair, so verification is recomputation.
type Argon2idHasher struct{}

func (Argon2idHasher) Hash(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return hex.EncodeToString(key)
}

// NewHasher returns the Hasher for the given algorithm name.
func NewHasher(algorithm string) (Hasher, error) {
	switch algorithm {
	case AlgSHA256:
		return SHA256Hasher{}, nil
	case AlgArgon2id:
		return Argon2idHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm: %q", algorithm)
	}
}

// GenerateSalt produces a fresh random alphanumeric salt. Called on every
// credential-set operation (registration and password change), never reused.
func GenerateSalt() (string, error) {
	return common.MakeRandAlphanumericString(common.SaltLength)
}
