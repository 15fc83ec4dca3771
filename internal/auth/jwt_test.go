package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTokenManager_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager(nil, TokenValidity)
	require.Error(t, err)

	_, err = NewTokenManager([]byte{}, TokenValidity)
	require.Error(t, err)
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	tm, err := NewTokenManager([]byte("super-secret"), time.Hour)
	require.NoError(t, err)

	token, err := tm.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", userID)
}

func TestTokenManager_IndependentTokens(t *testing.T) {
	t.Parallel()

	tm, err := NewTokenManager([]byte("super-secret"), time.Hour)
	require.NoError(t, err)

	first, err := tm.Issue("user-123")
	require.NoError(t, err)
	second, err := tm.Issue("user-123")
	require.NoError(t, err)

	// Both remain valid until each expires.
	for _, token := range []string{first, second} {
		userID, err := tm.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "user-123", userID)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	tm, err := NewTokenManager([]byte("super-secret"), -time.Second)
	require.NoError(t, err)

	token, err := tm.Issue("user-123")
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.Error(t, err)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenManager([]byte("secret-a"), time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenManager([]byte("secret-b"), time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestTokenManager_Tampered(t *testing.T) {
	t.Parallel()

	tm, err := NewTokenManager([]byte("super-secret"), time.Hour)
	require.NoError(t, err)

	token, err := tm.Issue("user-123")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = tm.Verify(tampered)
	require.Error(t, err)

	_, err = tm.Verify("not.a.token")
	require.Error(t, err)
}
