//go:build unit

package password_test

import (
	"testing"

	"booking-intake/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.NoError(t, password.ComparePassword(hash, "admin123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword(hash, ""), password.ErrInvalidPassword)

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestResolveAdminHash(t *testing.T) {
	t.Run("plaintext is hashed", func(t *testing.T) {
		hash, err := password.ResolveAdminHash("s3cret", "")
		require.NoError(t, err)
		assert.NoError(t, password.ComparePassword(hash, "s3cret"))
	})

	t.Run("configured hash wins", func(t *testing.T) {
		preset, err := password.HashPassword("from-hash")
		require.NoError(t, err)

		hash, err := password.ResolveAdminHash("ignored", preset)
		require.NoError(t, err)
		assert.Equal(t, preset, hash)
	})

	t.Run("malformed hash", func(t *testing.T) {
		_, err := password.ResolveAdminHash("", "not-bcrypt")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := password.ResolveAdminHash("", "")
		assert.ErrorIs(t, err, password.ErrNoAdminPassword)
	})
}
