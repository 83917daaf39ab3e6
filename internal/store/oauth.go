package store

import (
	"context"

	"gorm.io/gorm"

	"signalbench/internal/models"
)

func (s *Store) CreateAuthorization(ctx context.Context, a *models.OAuthAuthorization) error {
	return translate(s.db.WithContext(ctx).Create(a).Error)
}

// CreateAccessGrant stores an access token. Whether the grant is still valid
// is checked by the consuming API layer; expiry is just data here.
func (s *Store) CreateAccessGrant(ctx context.Context, g *models.OAuthAccessGrant) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRowPtr(tx, &models.User{}, g.UserID, "owning user"); err != nil {
			return err
		}
		return translate(tx.Create(g).Error)
	})
}

func (s *Store) ListAccessGrants(ctx context.Context, userID uint) ([]models.OAuthAccessGrant, error) {
	var grants []models.OAuthAccessGrant
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}
