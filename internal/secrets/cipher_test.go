package secrets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSaltSource is a deterministic source for tests
type fixedSaltSource struct {
	salt string
}

func (f fixedSaltSource) Salt() (string, error) {
	return f.salt, nil
}

func TestCipher(t *testing.T) {
	cipher := NewCipher("test-master-key")

	t.Run("Encrypt and decrypt round-trip", func(t *testing.T) {
		salt, err := NewSystemSaltSource().Salt()
		require.NoError(t, err)

		encrypted, err := cipher.Encrypt("super-secret-value", salt)
		require.NoError(t, err)
		assert.NotEmpty(t, encrypted)
		assert.NotEqual(t, "super-secret-value", encrypted)

		decrypted, err := cipher.Decrypt(encrypted, salt)
		require.NoError(t, err)
		assert.Equal(t, "super-secret-value", decrypted)
	})

	t.Run("Decrypt with wrong salt fails", func(t *testing.T) {
		encrypted, err := cipher.Encrypt("super-secret-value", "salt-a-salt-a-salt-a-salt-a-salt")
		require.NoError(t, err)

		_, err = cipher.Decrypt(encrypted, "salt-b-salt-b-salt-b-salt-b-salt")
		require.Error(t, err)
	})

	t.Run("Decrypt with wrong master key fails", func(t *testing.T) {
		encrypted, err := cipher.Encrypt("super-secret-value", "salt-a-salt-a-salt-a-salt-a-salt")
		require.NoError(t, err)

		other := NewCipher("different-master-key")
		_, err = other.Decrypt(encrypted, "salt-a-salt-a-salt-a-salt-a-salt")
		require.Error(t, err)
	})

	t.Run("Missing master key surfaces ErrKeyUnavailable", func(t *testing.T) {
		empty := NewCipher("")

		_, err := empty.Encrypt("anything", "salt")
		assert.True(t, errors.Is(err, ErrKeyUnavailable))

		_, err = empty.Decrypt("anything", "salt")
		assert.True(t, errors.Is(err, ErrKeyUnavailable))
	})
}

func TestSaltSource(t *testing.T) {
	t.Run("System source produces 32-char salts", func(t *testing.T) {
		source := NewSystemSaltSource()
		seen := make(map[string]bool)
		for i := 0; i < 10; i++ {
			salt, err := source.Salt()
			require.NoError(t, err)
			assert.Len(t, salt, 32)
			assert.False(t, seen[salt], "salts should not repeat")
			seen[salt] = true
		}
	})

	t.Run("Injected source is honored", func(t *testing.T) {
		source := fixedSaltSource{salt: "0123456789abcdef0123456789abcdef"}
		salt, err := source.Salt()
		require.NoError(t, err)
		assert.Equal(t, "0123456789abcdef0123456789abcdef", salt)
	})
}
