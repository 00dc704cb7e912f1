package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Handle)
	assert.Equal(t, "chatline", claims.Issuer)
}

func TestValidToken_Garbage(t *testing.T) {
	claims, err := ValidToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidToken_TamperedSignature(t *testing.T) {
	token, err := GenerateToken(1, "alice")
	require.NoError(t, err)

	claims, err := ValidToken(token + "x")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
