package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.GenerateMatchToken("abc")
	require.NoError(t, err)

	claims, err := issuer.ValidateMatchToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.MatchID)
}

func TestValidateMatchToken_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)
	expired := NewTokenIssuer("secret", -time.Minute)

	foreign, err := other.GenerateMatchToken("abc")
	require.NoError(t, err)
	_, err = issuer.ValidateMatchToken(foreign)
	assert.Error(t, err)

	stale, err := expired.GenerateMatchToken("abc")
	require.NoError(t, err)
	_, err = issuer.ValidateMatchToken(stale)
	assert.Error(t, err)

	_, err = issuer.ValidateMatchToken("garbage")
	assert.Error(t, err)
}
