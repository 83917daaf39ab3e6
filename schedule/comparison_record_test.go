package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"signalbench/internal/models"
)

func TestRecommendationBreakdown(t *testing.T) {
	recs := func(values ...float64) []models.TradeRecommendation {
		out := make([]models.TradeRecommendation, len(values))
		for i, v := range values {
			out[i].Value = v
		}
		return out
	}

	t.Run("All buys", func(t *testing.T) {
		buy, hold, sell := recommendationBreakdown(recs(0.5, 0.9, 0.34))
		assert.Equal(t, 100.0, buy)
		assert.Equal(t, 0.0, hold)
		assert.Equal(t, 0.0, sell)
	})

	t.Run("Mixed directions", func(t *testing.T) {
		buy, hold, sell := recommendationBreakdown(recs(0.5, 0.0, -0.5, -0.8))
		assert.Equal(t, 25.0, buy)
		assert.Equal(t, 25.0, hold)
		assert.Equal(t, 50.0, sell)
	})

	t.Run("Threshold boundaries count as hold", func(t *testing.T) {
		buy, hold, sell := recommendationBreakdown(recs(0.33, -0.33))
		assert.Equal(t, 0.0, buy)
		assert.Equal(t, 100.0, hold)
		assert.Equal(t, 0.0, sell)
	})
}
