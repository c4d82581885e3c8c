package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, sessionID, err := m.Generate("64b3f1a2c9e77d0012345678")
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	require.NotEmpty(t, sessionID)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "64b3f1a2c9e77d0012345678", claims.AuthorID)
	assert.Equal(t, sessionID, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, _, err := NewManager("secret-one", time.Hour).Generate("64b3f1a2c9e77d0012345678")
	require.NoError(t, err)

	_, err = NewManager("secret-two", time.Hour).Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	signed, _, err := m.Generate("64b3f1a2c9e77d0012345678")
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Verify("not-a-token")
	assert.Error(t, err)

	_, err = m.Verify("")
	assert.Error(t, err)
}

func TestSessionIDsAreUnique(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, first, err := m.Generate("64b3f1a2c9e77d0012345678")
	require.NoError(t, err)
	_, second, err := m.Generate("64b3f1a2c9e77d0012345678")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
