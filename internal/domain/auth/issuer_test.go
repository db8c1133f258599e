package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *Issuer {
	return NewIssuer(IssuerConfig{
		AccessSecret:    "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessLifetime:  time.Minute,
		RefreshLifetime: time.Hour,
	})
}

func TestIssuerRoundTrip(t *testing.T) {
	issuer := testIssuer()
	claims := ClaimSet{UserID: "u-1", Login: "alice"}

	access, err := issuer.IssueAccess(claims)
	require.NoError(t, err)
	refresh, err := issuer.IssueRefresh(claims)
	require.NoError(t, err)

	got, err := issuer.VerifyAccess(access)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, got.UserID)
	assert.Equal(t, claims.Login, got.Login)

	got, err = issuer.VerifyRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, got.UserID)
}

func TestIssuerRejectsCrossKindTokens(t *testing.T) {
	issuer := testIssuer()
	claims := ClaimSet{UserID: "u-1", Login: "alice"}

	access, err := issuer.IssueAccess(claims)
	require.NoError(t, err)
	refresh, err := issuer.IssueRefresh(claims)
	require.NoError(t, err)

	_, err = issuer.VerifyRefresh(access)
	assert.Error(t, err)
	_, err = issuer.VerifyAccess(refresh)
	assert.Error(t, err)
}

func TestIssuerRejectsWrongSecret(t *testing.T) {
	issuer := testIssuer()
	other := NewIssuer(IssuerConfig{
		AccessSecret:    "different-secret",
		RefreshSecret:   "also-different",
		AccessLifetime:  time.Minute,
		RefreshLifetime: time.Hour,
	})

	access, err := issuer.IssueAccess(ClaimSet{UserID: "u-1", Login: "alice"})
	require.NoError(t, err)

	_, err = other.VerifyAccess(access)
	assert.Error(t, err)
}

func TestIssuerRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer(IssuerConfig{
		AccessSecret:    "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessLifetime:  -time.Minute,
		RefreshLifetime: -time.Minute,
	})

	access, err := issuer.IssueAccess(ClaimSet{UserID: "u-1", Login: "alice"})
	require.NoError(t, err)

	_, err = issuer.VerifyAccess(access)
	assert.Error(t, err)
}

func TestIssuerRejectsGarbage(t *testing.T) {
	issuer := testIssuer()

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.VerifyAccess(token)
		assert.Error(t, err)
	}
}
