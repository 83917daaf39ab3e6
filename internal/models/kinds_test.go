package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTestKind(t *testing.T) {
	t.Run("Accepts declared values", func(t *testing.T) {
		for _, raw := range []string{"mock", "live"} {
			kind, err := ParseTestKind(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, string(kind))
			assert.True(t, kind.Valid())
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		for _, raw := range []string{"", "Mock", "production", "LIVE"} {
			_, err := ParseTestKind(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidKind))
		}
	})
}

func TestPredictionKind(t *testing.T) {
	t.Run("Empty value is permitted", func(t *testing.T) {
		assert.NoError(t, PredictionKind("").Validate())
	})

	t.Run("Unregistered value is rejected", func(t *testing.T) {
		err := PredictionKind("direction").Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidKind))
	})

	t.Run("Registered value is accepted", func(t *testing.T) {
		RegisterPredictionKind("percent_change")
		assert.NoError(t, PredictionKind("percent_change").Validate())
	})
}
