package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher()

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, h.Verify("secret1", hash))
	assert.False(t, h.Verify("secret2", hash))
}

func TestPasswordHasher_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher()

	h1, err := h.Hash("same-password")
	require.NoError(t, err)
	h2, err := h.Hash("same-password")
	require.NoError(t, err)

	// соль свежая на каждый вызов, хэши не совпадают
	assert.NotEqual(t, h1, h2)
	assert.True(t, h.Verify("same-password", h1))
	assert.True(t, h.Verify("same-password", h2))
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher()

	assert.False(t, h.Verify("whatever", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("whatever", ""))
}
