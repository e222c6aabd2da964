package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHash_Roundtrip(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	require.True(t, CheckPasswordHash("password123", hash))
	require.False(t, CheckPasswordHash("password124", hash))
}

func TestCheckPasswordHash_EmptyPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	// An absent password must be an ordinary mismatch, not a panic or error.
	require.False(t, CheckPasswordHash("", hash))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	require.False(t, CheckPasswordHash("password123", "not-a-bcrypt-hash"))
}
