package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"signalbench/internal/models"
	"signalbench/internal/secrets"
)

// Store wraps all persistence operations over the entity layer. Write-time
// invariants (referential checks, enum validation, soft-delete state
// conflicts) are enforced here so no caller can bypass them.
type Store struct {
	db     *gorm.DB
	cipher *secrets.Cipher
	salts  secrets.SaltSource
}

func New(db *gorm.DB, cipher *secrets.Cipher, salts secrets.SaltSource) *Store {
	return &Store{db: db, cipher: cipher, salts: salts}
}

// translate maps driver errors onto the write-time error taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", models.ErrUniqueViolation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", models.ErrReferentialIntegrity, err)
	}
	return err
}

// requireRow verifies a foreign reference resolves to an existing row,
// possibly soft-deleted, before the write is attempted. Dangling references
// are a hard error, never silently nulled.
func requireRow(tx *gorm.DB, model interface{}, id uint, what string) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d does not exist: %w", what, id, models.ErrReferentialIntegrity)
	}
	return nil
}

func requireRowPtr(tx *gorm.DB, model interface{}, id *uint, what string) error {
	if id == nil {
		return nil
	}
	return requireRow(tx, model, *id, what)
}

// softDelete flips the deleted/date_deleted/deleted_user_id triple in one
// statement guarded by the current flag, so a concurrent or repeated delete
// surfaces as a state conflict instead of silently passing.
func (s *Store) softDelete(ctx context.Context, model interface{}, id, byUserID uint, at time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.User{}, byUserID, "deleting user"); err != nil {
			return err
		}
		res := tx.Model(model).
			Where("id = ? AND deleted = ?", id, false).
			Updates(map[string]interface{}{
				"deleted":         true,
				"date_deleted":    at,
				"deleted_user_id": byUserID,
				"date_updated":    at,
			})
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return gorm.ErrRecordNotFound
			}
			return fmt.Errorf("record %d already deleted: %w", id, models.ErrStateConflict)
		}
		return nil
	})
}
