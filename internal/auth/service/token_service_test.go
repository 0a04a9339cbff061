package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/Darrly207/Gemetry-BE/internal/errors"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name        string
		secret      string
		expiryHours int
	}{
		{
			name:        "valid parameters",
			secret:      "secret-key",
			expiryHours: 24,
		},
		{
			name:        "empty secret",
			secret:      "",
			expiryHours: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.secret, tt.expiryHours)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.secret, ts.Secret)
			assert.Equal(t, time.Duration(tt.expiryHours)*time.Hour, ts.Expiry)
		})
	}
}

func TestTokenService_Issue(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 24)

	beforeIssue := time.Now()
	token, expiresAt, err := ts.Issue("user-123")
	afterIssue := time.Now()

	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Expiry time must be within the expected range
	assert.True(t, expiresAt.After(beforeIssue.Add(24*time.Hour).Add(-time.Second)))
	assert.True(t, expiresAt.Before(afterIssue.Add(24*time.Hour).Add(time.Second)))

	// The signed token must carry the user id and the expiry
	claims := &JWTCustomClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret-key-123"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Time.Unix())
}

func TestTokenService_Verify(t *testing.T) {
	ts := NewTokenService("test-secret", 24)

	t.Run("round trip", func(t *testing.T) {
		token, _, err := ts.Issue("user-456")
		require.NoError(t, err)

		claims, err := ts.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-456", claims.UserID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("other-secret", 24)
		token, _, err := other.Issue("user-456")
		require.NoError(t, err)

		claims, err := ts.Verify(token)
		assert.ErrorIs(t, err, autherror.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokenService("test-secret", -1)
		token, _, err := expired.Issue("user-456")
		require.NoError(t, err)

		claims, err := ts.Verify(token)
		assert.ErrorIs(t, err, autherror.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("garbage token", func(t *testing.T) {
		claims, err := ts.Verify("definitely-not-a-jwt")
		assert.ErrorIs(t, err, autherror.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("unsigned token", func(t *testing.T) {
		// Structurally valid JWT with alg "none"; the HMAC method check must
		// reject it.
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, JWTCustomClaims{
			UserID: "user-456",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		claims, err := ts.Verify(unsigned)
		assert.ErrorIs(t, err, autherror.ErrInvalidToken)
		assert.Nil(t, claims)
	})
}
