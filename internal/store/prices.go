package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"signalbench/internal/models"
)

func (s *Store) InsertPrice(ctx context.Context, p *models.Price) error {
	return translate(s.db.WithContext(ctx).Create(p).Error)
}

// PriceWindow returns the first and last observed price for a symbol inside
// [start, end]. ok is false when no observation fell in the window.
func (s *Store) PriceWindow(ctx context.Context, symbol string, start, end time.Time) (first, last float64, ok bool, err error) {
	var prices []models.Price
	if err = s.db.WithContext(ctx).
		Where("symbol = ? AND observed_at >= ? AND observed_at <= ?", symbol, start, end).
		Order("observed_at asc").
		Find(&prices).Error; err != nil {
		return 0, 0, false, err
	}
	if len(prices) == 0 {
		return 0, 0, false, nil
	}
	return prices[0].Price, prices[len(prices)-1].Price, true, nil
}

func (s *Store) CreateTradeRecommendation(ctx context.Context, r *models.TradeRecommendation) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRowPtr(tx, &models.SymbolPair{}, r.SymbolPairID, "symbol pair"); err != nil {
			return err
		}
		return translate(tx.Create(r).Error)
	})
}

func (s *Store) ListTradeRecommendations(ctx context.Context, symbolPairID *uint) ([]models.TradeRecommendation, error) {
	var recs []models.TradeRecommendation
	q := s.db.WithContext(ctx).Order("id asc")
	if symbolPairID != nil {
		q = q.Where("symbol_pair_id = ?", *symbolPairID)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// ListUncomparedRecommendations returns recommendations whose validity
// window closed before the cutoff and that no comparison row references yet.
func (s *Store) ListUncomparedRecommendations(ctx context.Context, before time.Time, limit int) ([]models.TradeRecommendation, error) {
	var recs []models.TradeRecommendation
	sub := s.db.Model(&models.PerformanceComparison{}).
		Select("recommendation_id").
		Where("recommendation_id IS NOT NULL")
	err := s.db.WithContext(ctx).
		Where("valid_until IS NOT NULL AND valid_until < ?", before).
		Where("id NOT IN (?)", sub).
		Order("valid_until asc").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
