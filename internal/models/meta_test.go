package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamps(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Initialize stamps both timestamps once", func(t *testing.T) {
		var ts Timestamps
		ts.Initialize(now)
		assert.Equal(t, now, ts.DateCreated)
		assert.Equal(t, now, ts.DateUpdated)

		// Re-initializing must not move the creation time
		ts.Initialize(now.Add(time.Hour))
		assert.Equal(t, now, ts.DateCreated)
	})

	t.Run("Touch keeps update time monotonic", func(t *testing.T) {
		var ts Timestamps
		ts.Initialize(now)

		ts.Touch(now.Add(time.Minute))
		assert.Equal(t, now.Add(time.Minute), ts.DateUpdated)

		// A touch with an earlier clock must not move the update time back
		ts.Touch(now.Add(-time.Hour))
		assert.Equal(t, now.Add(time.Minute), ts.DateUpdated)

		assert.True(t, !ts.DateUpdated.Before(ts.DateCreated))
	})
}

func TestAuditTrailSoftDelete(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Sets flag, time and actor together", func(t *testing.T) {
		var a AuditTrail
		require.NoError(t, a.SoftDelete(7, now))

		assert.True(t, a.Deleted)
		require.NotNil(t, a.DateDeleted)
		assert.Equal(t, now, *a.DateDeleted)
		require.NotNil(t, a.DeletedUserID)
		assert.Equal(t, uint(7), *a.DeletedUserID)
		assert.True(t, a.DeletionConsistent())
	})

	t.Run("Double delete is a state conflict", func(t *testing.T) {
		var a AuditTrail
		require.NoError(t, a.SoftDelete(7, now))

		err := a.SoftDelete(8, now.Add(time.Minute))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrStateConflict))

		// First deletion's attribution survives
		assert.Equal(t, uint(7), *a.DeletedUserID)
		assert.Equal(t, now, *a.DateDeleted)
	})

	t.Run("DeletionConsistent rejects mixed state", func(t *testing.T) {
		deletedBy := uint(3)

		fresh := AuditTrail{}
		assert.True(t, fresh.DeletionConsistent())

		flagOnly := AuditTrail{Deleted: true}
		assert.False(t, flagOnly.DeletionConsistent())

		timeOnly := AuditTrail{DateDeleted: &now}
		assert.False(t, timeOnly.DeletionConsistent())

		full := AuditTrail{Deleted: true, DateDeleted: &now, DeletedUserID: &deletedBy}
		assert.True(t, full.DeletionConsistent())
	})
}

func TestTestLinkValidate(t *testing.T) {
	classifier := uint(1)
	prediction := uint(2)

	t.Run("Single link is valid", func(t *testing.T) {
		assert.NoError(t, (&TestLink{}).Validate())
		assert.NoError(t, (&TestLink{ClassifierTestID: &classifier}).Validate())
		assert.NoError(t, (&TestLink{PredictionTestID: &prediction}).Validate())
	})

	t.Run("Both links rejected", func(t *testing.T) {
		link := TestLink{ClassifierTestID: &classifier, PredictionTestID: &prediction}
		err := link.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrStateConflict))
	})
}
