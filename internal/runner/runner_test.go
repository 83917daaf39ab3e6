package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signalbench/internal/models"
)

func TestMockRunner(t *testing.T) {
	task := &models.Task{Identity: models.Identity{ID: 42}}

	t.Run("Produces result in expected ranges", func(t *testing.T) {
		run := NewMock(1)
		out, err := run.Run(context.Background(), task)
		require.NoError(t, err)

		assert.True(t, out.Succeeded)
		assert.GreaterOrEqual(t, out.PercentCorrect, 40)
		assert.Less(t, out.PercentCorrect, 100)
		assert.GreaterOrEqual(t, out.PredictionSize, 50)
		assert.NotEmpty(t, out.Output)
		assert.Equal(t, int64(out.ProfitLossFloat), out.ProfitLossInt)
	})

	t.Run("Same seed reproduces metrics", func(t *testing.T) {
		a, err := NewMock(7).Run(context.Background(), task)
		require.NoError(t, err)
		b, err := NewMock(7).Run(context.Background(), task)
		require.NoError(t, err)

		assert.Equal(t, a.PercentCorrect, b.PercentCorrect)
		assert.Equal(t, a.PredictionSize, b.PredictionSize)
		assert.Equal(t, a.ProfitLossInt, b.ProfitLossInt)
	})

	t.Run("Cancelled context stops the run", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewMock(1).Run(ctx, task)
		require.Error(t, err)
	})
}
