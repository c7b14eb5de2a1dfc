package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer_IssueAndVerify(t *testing.T) {
	i := NewJWTIssuer("test-secret", time.Hour)
	now := time.Now()

	raw, exp, err := i.Issue(42, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), exp, time.Second)

	userID, err := i.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

// 署名違い
func TestJWTIssuer_Verify_WrongSecret(t *testing.T) {
	raw, _, err := NewJWTIssuer("other", time.Hour).Issue(1, time.Now())
	require.NoError(t, err)

	_, err = NewJWTIssuer("test-secret", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// 期限切れ
func TestJWTIssuer_Verify_Expired(t *testing.T) {
	i := NewJWTIssuer("test-secret", time.Minute)
	raw, _, err := i.Issue(1, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = i.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// アルゴリズム違い（HS512）
func TestJWTIssuer_Verify_WrongAlg(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTIssuer("test-secret", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTIssuer_Verify_BadSubject(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTIssuer("test-secret", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
