package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func TestIssueAndParse(t *testing.T) {
	m := newTestManager()

	pair, err := m.Issue(42, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	id, err := m.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	id, err = m.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseRejectsWrongTokenType(t *testing.T) {
	m := NewTokenManager("same", "same", time.Hour, time.Hour)
	pair, err := m.Issue(1, "employee")
	require.NoError(t, err)

	_, err = m.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = m.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsBadSignatureAndGarbage(t *testing.T) {
	m := newTestManager()
	other := NewTokenManager("other", "other-refresh", time.Hour, time.Hour)

	pair, err := other.Issue(7, "admin")
	require.NoError(t, err)

	_, err = m.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = m.ParseAccess("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = m.ParseAccess("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	m := newTestManager()
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	pair, err := m.Issue(3, "admin")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsNoneAlgorithm(t *testing.T) {
	m := newTestManager()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.ParseAccess(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	m := newTestManager()
	a, err := m.Issue(5, "employee")
	require.NoError(t, err)
	b, err := m.Issue(5, "employee")
	require.NoError(t, err)
	assert.NotEqual(t, a.RefreshToken, b.RefreshToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", "s3cret"))
}
