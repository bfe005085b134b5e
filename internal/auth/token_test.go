package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/translate-service/internal/auth"
)

func TestNewTokenManager(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		tm, err := auth.NewTokenManager("secret", "HS256", 30)
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, tm.TTL())
	})

	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := auth.NewTokenManager("", "HS256", 30)
		assert.Error(t, err)
	})

	t.Run("rejects unsupported algorithm", func(t *testing.T) {
		_, err := auth.NewTokenManager("secret", "RS256", 30)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive ttl", func(t *testing.T) {
		_, err := auth.NewTokenManager("secret", "HS256", 0)
		assert.Error(t, err)
		_, err = auth.NewTokenManager("secret", "HS256", -5)
		assert.Error(t, err)
	})
}

func TestIssueAndParse(t *testing.T) {
	tm, err := auth.NewTokenManager("test-secret", "HS256", 15)
	require.NoError(t, err)

	t.Run("claims round trip", func(t *testing.T) {
		before := time.Now()
		token, expiresAt, err := tm.Issue("alice1", 1)
		require.NoError(t, err)

		claims, err := tm.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "alice1", claims.Subject)
		assert.Equal(t, int64(1), claims.UserID)
		assert.WithinDuration(t, before.Add(15*time.Minute), expiresAt, 2*time.Second)
		assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
	})

	t.Run("tampered token fails verification", func(t *testing.T) {
		token, _, err := tm.Issue("alice1", 1)
		require.NoError(t, err)

		tampered := []byte(token)
		last := len(tampered) - 1
		if tampered[last] == 'A' {
			tampered[last] = 'B'
		} else {
			tampered[last] = 'A'
		}
		_, err = tm.Parse(string(tampered))
		assert.Error(t, err)
	})

	t.Run("token signed with another secret fails", func(t *testing.T) {
		other, err := auth.NewTokenManager("other-secret", "HS256", 15)
		require.NoError(t, err)
		token, _, err := other.Issue("alice1", 1)
		require.NoError(t, err)

		_, err = tm.Parse(token)
		assert.Error(t, err)
	})

	t.Run("algorithm mismatch fails", func(t *testing.T) {
		hs512, err := auth.NewTokenManager("test-secret", "HS512", 15)
		require.NoError(t, err)
		token, _, err := hs512.Issue("alice1", 1)
		require.NoError(t, err)

		_, err = tm.Parse(token)
		assert.Error(t, err)
	})
}
