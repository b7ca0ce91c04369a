package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetToken(t *testing.T) {
	raw, hashed, err := GenerateResetToken()
	require.NoError(t, err)

	// 32 random bytes, hex encoded.
	assert.Len(t, raw, 64)
	assert.NotEqual(t, raw, hashed)
	assert.Equal(t, HashResetToken(raw), hashed)

	t.Run("tokens are unique", func(t *testing.T) {
		raw2, _, err := GenerateResetToken()
		require.NoError(t, err)
		assert.NotEqual(t, raw, raw2)
	})
}

func TestHashResetToken(t *testing.T) {
	// sha256 digest, hex encoded, and deterministic.
	hash := HashResetToken("abc")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashResetToken("abc"))
	assert.NotEqual(t, hash, HashResetToken("abd"))
}
