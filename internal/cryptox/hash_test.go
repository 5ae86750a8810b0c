package cryptox

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasiljevs/userauth/internal/common"
)

func TestHash_Deterministic(t *testing.T) {
	for _, h := range []Hasher{SHA256Hasher{}, Argon2idHasher{}} {
		a := h.Hash("pw1", "saltAAA")
		b := h.Hash("pw1", "saltAAA")
		assert.Equal(t, a, b)
	}
}

func TestHash_DifferentSaltsDiffer(t *testing.T) {
	for _, h := range []Hasher{SHA256Hasher{}, Argon2idHasher{}} {
		a := h.Hash("pw1", "salt001")
		b := h.Hash("pw1", "salt002")
		assert.NotEqual(t, a, b)
	}
}

func TestHash_DifferentPasswordsDiffer(t *testing.T) {
	for _, h := range []Hasher{SHA256Hasher{}, Argon2idHasher{}} {
		assert.NotEqual(t, h.Hash("pw1", "saltAAA"), h.Hash("pw2", "saltAAA"))
	}
}

func TestSHA256Hasher_KnownVector(t *testing.T) {
	// sha256("pw1" + "salt") uppercase hex, the storage format of
	// pre-existing rows.
	got := SHA256Hasher{}.Hash("pw1", "salt")
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{64}$`), got)
}

func TestNewHasher(t *testing.T) {
	h, err := NewHasher(AlgSHA256)
	require.NoError(t, err)
	assert.IsType(t, SHA256Hasher{}, h)

	h, err = NewHasher(AlgArgon2id)
	require.NoError(t, err)
	assert.IsType(t, Argon2idHasher{}, h)

	_, err = NewHasher("md5")
	assert.Error(t, err)
}

func TestGenerateSalt(t *testing.T) {
	s1, err := GenerateSalt()
	require.NoError(t, err)
	s2, err := GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, common.SaltLength)
	assert.NotEqual(t, s1, s2)
}
