package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("longenough")
	require.NoError(t, err)
	require.NotEqual(t, "longenough", hash)
	require.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt digest, got %q", hash)

	require.True(t, CheckPassword("longenough", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("longenough")
	require.NoError(t, err)
	second, err := HashPassword("longenough")
	require.NoError(t, err)

	// Same plaintext, different salt, different digest.
	require.NotEqual(t, first, second)
	require.True(t, CheckPassword("longenough", first))
	require.True(t, CheckPassword("longenough", second))
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	tests := []struct {
		name  string
		plain string
		hash  string
	}{
		{name: "wrong password", plain: "battery-staple", hash: hash},
		{name: "empty password", plain: "", hash: hash},
		{name: "malformed hash", plain: "correct-horse", hash: "not-a-bcrypt-hash"},
		{name: "empty hash", plain: "correct-horse", hash: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.False(t, CheckPassword(tt.plain, tt.hash))
		})
	}
}
