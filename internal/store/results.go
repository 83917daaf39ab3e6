package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"signalbench/internal/models"
)

// SubmitTaskResult records one task execution in a single short transaction:
// the result row is appended, the task's outcome timestamps move, and the
// worker's completion counter is incremented. Delivery from the execution
// layer is at-least-once, so the whole operation is keyed by the execution
// token: a retried report with the same token is a no-op, never a second
// increment.
func (s *Store) SubmitTaskResult(ctx context.Context, res *models.TaskResult, succeeded bool, at time.Time) error {
	if res.ExecutionToken == "" {
		res.ExecutionToken = uuid.NewString()
	}
	if err := res.TestLink.Validate(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Worker{}, res.WorkerID, "worker"); err != nil {
			return err
		}
		if err := requireRow(tx, &models.Task{}, res.TaskID, "task"); err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&models.TaskResult{}).
			Where("execution_token = ?", res.ExecutionToken).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			// Retried report of an execution already on record.
			return nil
		}

		if err := tx.Create(res).Error; err != nil {
			// A concurrent retry can slip past the count and land on the
			// unique index instead; same outcome.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return translate(err)
		}

		taskUpdates := map[string]interface{}{
			"date_last_ran": at,
			"date_updated":  at,
		}
		if succeeded {
			taskUpdates["date_last_success"] = at
		} else {
			taskUpdates["date_last_failure"] = at
		}
		if err := tx.Model(&models.Task{}).Where("id = ?", res.TaskID).Updates(taskUpdates).Error; err != nil {
			return translate(err)
		}

		return translate(tx.Model(&models.Worker{}).Where("id = ?", res.WorkerID).Updates(map[string]interface{}{
			"tasks_complete": gorm.Expr("tasks_complete + 1"),
			"date_updated":   at,
		}).Error)
	})
}

func (s *Store) GetTaskResult(ctx context.Context, id uint) (*models.TaskResult, error) {
	var r models.TaskResult
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) ListTaskResults(ctx context.Context, taskID uint) ([]models.TaskResult, error) {
	var results []models.TaskResult
	if err := s.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("id asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
