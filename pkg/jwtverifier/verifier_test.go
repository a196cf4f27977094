package jwtverifier

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_RoundTrip(t *testing.T) {
	v := New("secret", 0)
	userID := uuid.New()

	token, err := v.Sign(userID, "guest@example.com", time.Hour)
	require.NoError(t, err)

	identity, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "guest@example.com", identity.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), identity.ExpiresAt, 5*time.Second)
}

func TestVerifier_Rejects(t *testing.T) {
	v := New("secret", 0)
	userID := uuid.New()

	t.Run("expired", func(t *testing.T) {
		token, err := v.Sign(userID, "a@b", -time.Minute)
		require.NoError(t, err)

		_, err = v.Verify(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := New("other", 0).Sign(userID, "a@b", time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("subject is not uuid", func(t *testing.T) {
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = v.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
