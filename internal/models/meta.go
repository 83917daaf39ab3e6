package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Identity carries the numeric primary key shared by every table.
type Identity struct {
	ID uint `gorm:"primarykey" json:"id"`
}

// Timestamps tracks record creation and last mutation. DateCreated is set
// once at insert; DateUpdated never moves backwards.
type Timestamps struct {
	DateCreated time.Time `gorm:"column:date_created;not null" json:"date_created"`
	DateUpdated time.Time `gorm:"column:date_updated;not null" json:"date_updated"`
}

// Initialize stamps both timestamps. Rows written without it have undefined
// timestamps, which tests treat as a data-integrity defect.
func (t *Timestamps) Initialize(now time.Time) {
	if t.DateCreated.IsZero() {
		t.DateCreated = now
	}
	t.DateUpdated = t.DateCreated
}

// Touch refreshes DateUpdated on mutation, keeping it monotonic.
func (t *Timestamps) Touch(now time.Time) {
	if now.After(t.DateUpdated) {
		t.DateUpdated = now
	}
}

func (t *Timestamps) BeforeCreate(tx *gorm.DB) error {
	t.Initialize(time.Now().UTC())
	return nil
}

func (t *Timestamps) BeforeUpdate(tx *gorm.DB) error {
	t.Touch(time.Now().UTC())
	return nil
}

// Owned attributes a record to the user that owns it. The reference must
// resolve to an existing user at commit time.
type Owned struct {
	UserID *uint `gorm:"column:user_id" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// AuditTrail adds creation attribution and soft-delete bookkeeping. The
// deleted flag, deletion time and deleting user are set together or not at
// all; rows are never physically removed.
type AuditTrail struct {
	Deleted       bool       `gorm:"column:deleted;not null;default:false" json:"deleted"`
	DateDeleted   *time.Time `gorm:"column:date_deleted" json:"date_deleted"`
	CreatedUserID *uint      `gorm:"column:created_user_id" json:"created_user_id"`
	DeletedUserID *uint      `gorm:"column:deleted_user_id" json:"deleted_user_id"`
	CreatedUser   *User      `gorm:"foreignKey:CreatedUserID" json:"-"`
	DeletedUser   *User      `gorm:"foreignKey:DeletedUserID" json:"-"`
}

// SoftDelete marks the record deleted, attributing the deletion. Deleting an
// already-deleted record is a state conflict, never a silent success.
func (a *AuditTrail) SoftDelete(byUserID uint, at time.Time) error {
	if a.Deleted {
		return fmt.Errorf("already deleted: %w", ErrStateConflict)
	}
	a.Deleted = true
	a.DateDeleted = &at
	a.DeletedUserID = &byUserID
	return nil
}

// DeletionConsistent reports whether the flag/timestamp/actor triple is in a
// legal state: all set, or none.
func (a *AuditTrail) DeletionConsistent() bool {
	if a.Deleted {
		return a.DateDeleted != nil && a.DeletedUserID != nil
	}
	return a.DateDeleted == nil && a.DeletedUserID == nil
}

// TestLink points a record at the test configuration that produced it. At
// most one of the two references is populated per row.
type TestLink struct {
	ClassifierTestID *uint                        `gorm:"column:classifier_test_id" json:"classifier_test_id"`
	PredictionTestID *uint                        `gorm:"column:prediction_test_id" json:"prediction_test_id"`
	ClassifierTest   *ClassifierTestConfiguration `gorm:"foreignKey:ClassifierTestID" json:"-"`
	PredictionTest   *PredictionTestConfiguration `gorm:"foreignKey:PredictionTestID" json:"-"`
}

// Validate rejects rows claiming to come from both test families.
func (l *TestLink) Validate() error {
	if l.ClassifierTestID != nil && l.PredictionTestID != nil {
		return fmt.Errorf("record links both classifier and prediction tests: %w", ErrStateConflict)
	}
	return nil
}
