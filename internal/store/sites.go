package store

import (
	"context"

	"gorm.io/gorm"

	"signalbench/internal/models"
)

func (s *Store) CreateTradeSite(ctx context.Context, site *models.TradeSite) error {
	return translate(s.db.WithContext(ctx).Create(site).Error)
}

func (s *Store) ListTradeSites(ctx context.Context) ([]models.TradeSite, error) {
	var sites []models.TradeSite
	if err := s.db.WithContext(ctx).Order("id asc").Find(&sites).Error; err != nil {
		return nil, err
	}
	return sites, nil
}

func (s *Store) CreateSymbolPair(ctx context.Context, pair *models.SymbolPair) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRowPtr(tx, &models.TradeSite{}, pair.SiteID, "trade site"); err != nil {
			return err
		}
		return translate(tx.Create(pair).Error)
	})
}

func (s *Store) GetSymbolPair(ctx context.Context, id uint) (*models.SymbolPair, error) {
	var pair models.SymbolPair
	if err := s.db.WithContext(ctx).First(&pair, id).Error; err != nil {
		return nil, err
	}
	return &pair, nil
}

func (s *Store) ListSymbolPairs(ctx context.Context) ([]models.SymbolPair, error) {
	var pairs []models.SymbolPair
	if err := s.db.WithContext(ctx).Order("id asc").Find(&pairs).Error; err != nil {
		return nil, err
	}
	return pairs, nil
}
