package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret", 8*time.Hour)

	token, err := m.Generate("42", "ana", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "42", claims.UserID)
	require.Equal(t, "ana", claims.Username)
	require.Equal(t, "user", claims.Role)
}

func TestGenerateWithoutSecret(t *testing.T) {
	m := NewManager("", 8*time.Hour)

	_, err := m.Generate("42", "ana", "user")
	require.ErrorIs(t, err, ErrNoSecret)
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewManager("issuer-secret", time.Hour)
	verifier := NewManager("other-secret", time.Hour)

	token, err := issuer.Generate("42", "ana", "author")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.Error(t, err)
}

func TestValidateMalformedToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Validate("not.a.token")
	require.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Generate("42", "ana", "user")
	require.NoError(t, err)

	_, err = m.Validate(token)
	require.Error(t, err)
}
