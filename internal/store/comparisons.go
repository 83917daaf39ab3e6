package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"signalbench/internal/models"
)

// CreatePerformanceComparison appends one evaluation window's comparison.
// Recomputation always produces a new row; existing rows are never mutated.
func (s *Store) CreatePerformanceComparison(ctx context.Context, c *models.PerformanceComparison) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRowPtr(tx, &models.User{}, c.UserID, "owning user"); err != nil {
			return err
		}
		if err := requireRowPtr(tx, &models.User{}, c.CreatedUserID, "creating user"); err != nil {
			return err
		}
		if err := requireRowPtr(tx, &models.TradeRecommendation{}, c.RecommendationID, "recommendation"); err != nil {
			return err
		}
		if err := requireRowPtr(tx, &models.SymbolPair{}, c.SymbolPairID, "symbol pair"); err != nil {
			return err
		}
		return translate(tx.Create(c).Error)
	})
}

func (s *Store) GetPerformanceComparison(ctx context.Context, id uint) (*models.PerformanceComparison, error) {
	var c models.PerformanceComparison
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListPerformanceComparisons(ctx context.Context, symbolPairID *uint) ([]models.PerformanceComparison, error) {
	query := s.db.WithContext(ctx).Model(&models.PerformanceComparison{})
	if symbolPairID != nil {
		query = query.Where("symbol_pair_id = ?", *symbolPairID)
	}
	var comparisons []models.PerformanceComparison
	if err := query.Order("id asc").Find(&comparisons).Error; err != nil {
		return nil, err
	}
	return comparisons, nil
}

func (s *Store) SoftDeletePerformanceComparison(ctx context.Context, id, byUserID uint, at time.Time) error {
	return s.softDelete(ctx, &models.PerformanceComparison{}, id, byUserID, at)
}
