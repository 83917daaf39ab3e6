package store

import (
	"context"
	"fmt"
	"net"
	"time"

	"gorm.io/gorm"

	"signalbench/internal/models"
)

// RegisterWorker persists a new worker record. Registration happens once per
// worker process; everything after goes through the self-report path.
func (s *Store) RegisterWorker(ctx context.Context, w *models.Worker) error {
	if w.IPAddress != "" && net.ParseIP(w.IPAddress) == nil {
		return fmt.Errorf("invalid worker ip address %q", w.IPAddress)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRowPtr(tx, &models.User{}, w.UserID, "owning user"); err != nil {
			return err
		}
		if err := requireRowPtr(tx, &models.Task{}, w.TaskID, "assigned task"); err != nil {
			return err
		}
		return translate(tx.Create(w).Error)
	})
}

// WorkerCheckIn is the worker self-report heartbeat. It touches only the
// check-in fields of the worker's own row so it cannot race with
// user-initiated edits on anything else.
func (s *Store) WorkerCheckIn(ctx context.Context, workerID uint, ip string, at time.Time) error {
	if ip != "" && net.ParseIP(ip) == nil {
		return fmt.Errorf("invalid worker ip address %q", ip)
	}
	updates := map[string]interface{}{
		"last_check_in": at,
		"date_updated":  at,
	}
	if ip != "" {
		updates["ip_address"] = ip
	}
	res := s.db.WithContext(ctx).Model(&models.Worker{}).Where("id = ?", workerID).Updates(updates)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AssignTask points a worker at its current task. This is the user-facing
// edit path, kept separate from worker self-reports.
func (s *Store) AssignTask(ctx context.Context, workerID, taskID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Task{}, taskID, "task"); err != nil {
			return err
		}
		res := tx.Model(&models.Worker{}).Where("id = ?", workerID).Updates(map[string]interface{}{
			"task_id":      taskID,
			"date_updated": time.Now().UTC(),
		})
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (s *Store) GetWorker(ctx context.Context, id uint) (*models.Worker, error) {
	var w models.Worker
	if err := s.db.WithContext(ctx).First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Store) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	var workers []models.Worker
	if err := s.db.WithContext(ctx).Order("id asc").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}
