package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"signalbench/internal/models"
)

// CreateBaseTestConfiguration persists the shared test parameters after
// validating the kind and the site/symbol-pair references.
func (s *Store) CreateBaseTestConfiguration(ctx context.Context, c *models.TestConfigurationBase) error {
	if !c.TestKind.Valid() {
		return fmt.Errorf("test kind %q: %w", string(c.TestKind), models.ErrInvalidKind)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRowPtr(tx, &models.TradeSite{}, c.SiteID, "trade site"); err != nil {
			return err
		}
		if err := requireRowPtr(tx, &models.SymbolPair{}, c.SymbolPairID, "symbol pair"); err != nil {
			return err
		}
		if err := requireRowPtr(tx, &models.User{}, c.CreatedUserID, "creating user"); err != nil {
			return err
		}
		return translate(tx.Create(c).Error)
	})
}

// CreatePredictionTestConfiguration persists the neural-network
// hyperparameters on top of an existing base configuration. An
// unregistered prediction kind is rejected and no row is written.
func (s *Store) CreatePredictionTestConfiguration(ctx context.Context, c *models.PredictionTestConfiguration) error {
	if err := c.PredictionKind.Validate(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.TestConfigurationBase{}, c.BaseID, "base configuration"); err != nil {
			return err
		}
		return translate(tx.Create(c).Error)
	})
}

func (s *Store) CreateClassifierTestConfiguration(ctx context.Context, c *models.ClassifierTestConfiguration) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.TestConfigurationBase{}, c.BaseID, "base configuration"); err != nil {
			return err
		}
		return translate(tx.Create(c).Error)
	})
}

func (s *Store) GetBaseTestConfiguration(ctx context.Context, id uint) (*models.TestConfigurationBase, error) {
	var c models.TestConfigurationBase
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) GetPredictionTestConfiguration(ctx context.Context, id uint) (*models.PredictionTestConfiguration, error) {
	var c models.PredictionTestConfiguration
	if err := s.db.WithContext(ctx).Preload("Base").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListBaseTestConfigurations(ctx context.Context) ([]models.TestConfigurationBase, error) {
	var configs []models.TestConfigurationBase
	if err := s.db.WithContext(ctx).Order("id asc").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (s *Store) ListPredictionTestConfigurations(ctx context.Context) ([]models.PredictionTestConfiguration, error) {
	var configs []models.PredictionTestConfiguration
	if err := s.db.WithContext(ctx).Order("id asc").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (s *Store) ListClassifierTestConfigurations(ctx context.Context) ([]models.ClassifierTestConfiguration, error) {
	var configs []models.ClassifierTestConfiguration
	if err := s.db.WithContext(ctx).Order("id asc").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (s *Store) SoftDeleteBaseTestConfiguration(ctx context.Context, id, byUserID uint, at time.Time) error {
	return s.softDelete(ctx, &models.TestConfigurationBase{}, id, byUserID, at)
}
