package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"signalbench/internal/models"
)

// CreateTask persists a user-created task after checking its test linkage
// and ownership references resolve.
func (s *Store) CreateTask(ctx context.Context, t *models.Task) error {
	if err := t.TestLink.Validate(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRowPtr(tx, &models.User{}, t.UserID, "owning user"); err != nil {
			return err
		}
		if err := requireRowPtr(tx, &models.ClassifierTestConfiguration{}, t.ClassifierTestID, "classifier test"); err != nil {
			return err
		}
		if err := requireRowPtr(tx, &models.PredictionTestConfiguration{}, t.PredictionTestID, "prediction test"); err != nil {
			return err
		}
		return translate(tx.Create(t).Error)
	})
}

func (s *Store) GetTask(ctx context.Context, id uint) (*models.Task, error) {
	var t models.Task
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.WithContext(ctx).Order("id asc").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) SoftDeleteTask(ctx context.Context, id, byUserID uint, at time.Time) error {
	return s.softDelete(ctx, &models.Task{}, id, byUserID, at)
}
