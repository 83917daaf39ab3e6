package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	logger "github.com/sirupsen/logrus"

	"signalbench/internal/models"
	"signalbench/internal/store"
)

const uncomparedBatchSize = 200

// Start registers the comparison recorder on a five-minute cadence and
// starts the scheduler.
func Start(st *store.Store) *cron.Cron {
	c := cron.New(cron.WithSeconds())
	c.AddFunc("0 */5 * * * *", func() {
		if err := RecordPerformanceComparisons(st); err != nil {
			logger.Errorf("> Comparison recording failed: %v", err)
		}
	})
	c.Start()
	return c
}

// RecordPerformanceComparisons joins recommendations whose validity window
// has closed against the price movement actually observed, and appends one
// comparison row per symbol pair. Existing comparison rows are never
// touched; a recompute appends.
func RecordPerformanceComparisons(st *store.Store) error {
	ctx := context.Background()
	now := time.Now().UTC()

	logger.Info("> Recording performance comparisons")

	recs, err := st.ListUncomparedRecommendations(ctx, now, uncomparedBatchSize)
	if err != nil {
		return fmt.Errorf("failed to list recommendations: %w", err)
	}
	if len(recs) == 0 {
		logger.Info("> No closed recommendation windows to compare")
		return nil
	}

	byPair := make(map[uint][]models.TradeRecommendation)
	for _, rec := range recs {
		if rec.SymbolPairID == nil || rec.ValidFrom == nil || rec.ValidUntil == nil {
			continue
		}
		byPair[*rec.SymbolPairID] = append(byPair[*rec.SymbolPairID], rec)
	}

	for pairID, pairRecs := range byPair {
		if err := recordPairComparison(ctx, st, pairID, pairRecs); err != nil {
			logger.Errorf("> Failed to record comparison for symbol pair %d: %v", pairID, err)
			continue
		}
	}
	return nil
}

func recordPairComparison(ctx context.Context, st *store.Store, pairID uint, recs []models.TradeRecommendation) error {
	pair, err := st.GetSymbolPair(ctx, pairID)
	if err != nil {
		return err
	}
	symbol := pair.BaseSymbol + "_" + pair.QuoteSymbol

	// Aggregate one row per pair: the recommendation window spans the
	// earliest start to the latest end, the neural value is weighted by each
	// recommendation's validity duration.
	start, end := *recs[0].ValidFrom, *recs[0].ValidUntil
	var weightedSum, weightTotal float64
	for _, rec := range recs {
		if rec.ValidFrom.Before(start) {
			start = *rec.ValidFrom
		}
		if rec.ValidUntil.After(end) {
			end = *rec.ValidUntil
		}
		w := rec.ValidUntil.Sub(*rec.ValidFrom).Seconds()
		if w <= 0 {
			w = 1
		}
		weightedSum += rec.Value * w
		weightTotal += w
	}
	weightedAvg := weightedSum / weightTotal

	first, last, ok, err := st.PriceWindow(ctx, symbol, start, end)
	if err != nil {
		return err
	}
	if !ok {
		logger.Warnf("> No price observations for %s in window, skipping", symbol)
		return nil
	}

	actual := last - first
	latest := recs[len(recs)-1]
	percentBuy, percentHold, percentSell := recommendationBreakdown(recs)

	comparison := models.PerformanceComparison{
		ActualMovement:           actual,
		Delta:                    actual - weightedAvg,
		DirectionallySame:        (actual >= 0) == (weightedAvg >= 0),
		NeuralNetworkRec:         latest.Value,
		PercentBuy:               percentBuy,
		PercentHold:              percentHold,
		PercentSell:              percentSell,
		PriceTimeRangeStart:      &start,
		PriceTimeRangeEnd:        &end,
		TrTimeRangeStart:         &start,
		TrTimeRangeEnd:           &end,
		RecommendationCount:      len(recs),
		WeightedAverageNeuralRec: weightedAvg,
		RecommendationID:         &latest.ID,
		SymbolPairID:             &pairID,
	}
	if err := st.CreatePerformanceComparison(ctx, &comparison); err != nil {
		return err
	}
	logger.Infof("> Recorded comparison for %s: %d recommendations, actual movement %.6f", symbol, len(recs), actual)
	return nil
}

// recommendationBreakdown buckets recommendations by direction. Values above
// the buy threshold count as buy, below the sell threshold as sell, the rest
// as hold.
func recommendationBreakdown(recs []models.TradeRecommendation) (buy, hold, sell float64) {
	const buyThreshold, sellThreshold = 0.33, -0.33
	var nBuy, nHold, nSell int
	for _, rec := range recs {
		switch {
		case rec.Value > buyThreshold:
			nBuy++
		case rec.Value < sellThreshold:
			nSell++
		default:
			nHold++
		}
	}
	total := float64(len(recs))
	return float64(nBuy) / total * 100, float64(nHold) / total * 100, float64(nSell) / total * 100
}
