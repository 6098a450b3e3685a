package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolationRepo_SaveViolation(t *testing.T) {
	r := NewViolationRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	v := models.Violation{
		ID:            uuid.NewString(),
		ReporterID:    2,
		TypeCode:      "RED_LIGHT",
		Description:   "jumped the signal at MG Road",
		VehicleNumber: "KA05GH3456",
		City:          "Bengaluru",
		State:         "Karnataka",
		Status:        models.ViolationPending,
		OccurredAt:    time.Now().Add(-time.Hour),
	}

	require.NoError(t, r.SaveViolation(ctx, &v))
	assert.False(t, v.ReportedAt.IsZero())

	got, err := r.GetViolation(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)
	assert.Equal(t, int64(2), got.ReporterID)
	assert.Equal(t, models.ViolationPending, got.Status)
	assert.Nil(t, got.ReviewedBy)
}

func TestViolationRepo_GetViolation(t *testing.T) {
	r := NewViolationRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	t.Run("existing violation", func(t *testing.T) {
		got, err := r.GetViolation(ctx, violationVerified)
		require.NoError(t, err)
		assert.Equal(t, models.ViolationVerified, got.Status)
		assert.Equal(t, "NO_HELMET", got.TypeCode)
	})

	t.Run("unknown violation", func(t *testing.T) {
		_, err := r.GetViolation(ctx, uuid.NewString())
		assert.ErrorIs(t, err, apperrors.ErrViolationNotFound)
	})
}

func TestViolationRepo_GetViolationsByReporter(t *testing.T) {
	r := NewViolationRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	violations, err := r.GetViolationsByReporter(ctx, 1)
	require.NoError(t, err)
	require.Len(t, violations, 3)

	for i := 0; i < len(violations)-1; i++ {
		assert.False(t, violations[i].ReportedAt.Before(violations[i+1].ReportedAt))
	}

	none, err := r.GetViolationsByReporter(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestViolationRepo_UpdateReview(t *testing.T) {
	r := NewViolationRepository(testDB)
	ctx := context.Background()

	t.Run("pending violation can be verified", func(t *testing.T) {
		setupTestData(t, testDB)

		err := r.UpdateReview(ctx, violationPending, models.ViolationVerified, 3, "clear footage")
		require.NoError(t, err)

		got, err := r.GetViolation(ctx, violationPending)
		require.NoError(t, err)
		assert.Equal(t, models.ViolationVerified, got.Status)
		require.NotNil(t, got.ReviewedBy)
		assert.Equal(t, int64(3), *got.ReviewedBy)
		assert.NotNil(t, got.ReviewedAt)
		assert.Equal(t, "clear footage", got.ReviewNotes)
	})

	t.Run("pending violation can be rejected", func(t *testing.T) {
		setupTestData(t, testDB)

		err := r.UpdateReview(ctx, violationPending, models.ViolationRejected, 3, "plate unreadable")
		require.NoError(t, err)

		got, err := r.GetViolation(ctx, violationPending)
		require.NoError(t, err)
		assert.Equal(t, models.ViolationRejected, got.Status)
	})

	t.Run("second review is rejected", func(t *testing.T) {
		setupTestData(t, testDB)

		require.NoError(t, r.UpdateReview(ctx, violationPending, models.ViolationVerified, 3, ""))

		err := r.UpdateReview(ctx, violationPending, models.ViolationRejected, 3, "changed my mind")
		assert.ErrorIs(t, err, apperrors.ErrInvalidViolationState)

		got, err := r.GetViolation(ctx, violationPending)
		require.NoError(t, err)
		assert.Equal(t, models.ViolationVerified, got.Status)
	})

	t.Run("paid violation stays paid", func(t *testing.T) {
		setupTestData(t, testDB)

		err := r.UpdateReview(ctx, violationPaid, models.ViolationRejected, 3, "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidViolationState)
	})

	t.Run("unknown violation", func(t *testing.T) {
		setupTestData(t, testDB)

		err := r.UpdateReview(ctx, uuid.NewString(), models.ViolationVerified, 3, "")
		assert.ErrorIs(t, err, apperrors.ErrViolationNotFound)
	})
}

func TestViolationRepo_ViolationTypes(t *testing.T) {
	r := NewViolationRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	t.Run("known type", func(t *testing.T) {
		vt, err := r.GetViolationType(ctx, "NO_HELMET")
		require.NoError(t, err)
		assert.Equal(t, "Riding without helmet", vt.Name)
		assert.True(t, vt.IsActive)
		assert.Equal(t, int64(100000), vt.FineAmount)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := r.GetViolationType(ctx, "JAYWALKING")
		assert.ErrorIs(t, err, apperrors.ErrInvalidViolationType)
	})

	t.Run("listing skips inactive types", func(t *testing.T) {
		_, err := testDB.Exec(`UPDATE violation_types SET is_active = FALSE WHERE code = 'TRIPLE_RIDING'`)
		require.NoError(t, err)
		defer func() {
			_, err := testDB.Exec(`UPDATE violation_types SET is_active = TRUE WHERE code = 'TRIPLE_RIDING'`)
			require.NoError(t, err)
		}()

		types, err := r.ListViolationTypes(ctx)
		require.NoError(t, err)
		for _, vt := range types {
			assert.NotEqual(t, "TRIPLE_RIDING", vt.Code)
			assert.True(t, vt.IsActive)
		}
	})
}
