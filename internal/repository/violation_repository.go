package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/logger"
	"github.com/snapchallan/rewards/internal/models"
	"go.uber.org/zap"
)

type ViolationRepository interface {
	SaveViolation(ctx context.Context, v *models.Violation) error
	GetViolation(ctx context.Context, id string) (models.Violation, error)
	GetViolationsByReporter(ctx context.Context, reporterID int64) ([]models.Violation, error)
	UpdateReview(ctx context.Context, id, status string, reviewerID int64, notes string) error
	GetViolationType(ctx context.Context, code string) (models.ViolationType, error)
	ListViolationTypes(ctx context.Context) ([]models.ViolationType, error)
}

type violationRepo struct {
	db *sql.DB
}

func NewViolationRepository(db *sql.DB) ViolationRepository {
	return &violationRepo{db: db}
}

func (r *violationRepo) SaveViolation(ctx context.Context, v *models.Violation) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO violations (id, reporter_id, type_code, description, vehicle_number, city, state, status, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING reported_at
	`, v.ID, v.ReporterID, v.TypeCode, v.Description, v.VehicleNumber,
		v.City, v.State, v.Status, v.OccurredAt).Scan(&v.ReportedAt)
}

func (r *violationRepo) GetViolation(ctx context.Context, id string) (models.Violation, error) {
	var v models.Violation
	err := r.db.QueryRowContext(ctx, `
		SELECT id, reporter_id, type_code, description, vehicle_number, city, state,
		       status, occurred_at, reported_at, reviewed_by, reviewed_at, review_notes
		FROM violations WHERE id = $1
	`, id).Scan(&v.ID, &v.ReporterID, &v.TypeCode, &v.Description, &v.VehicleNumber,
		&v.City, &v.State, &v.Status, &v.OccurredAt, &v.ReportedAt,
		&v.ReviewedBy, &v.ReviewedAt, &v.ReviewNotes)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Violation{}, apperrors.ErrViolationNotFound
	}
	if err != nil {
		return models.Violation{}, err
	}
	return v, nil
}

func (r *violationRepo) GetViolationsByReporter(ctx context.Context, reporterID int64) ([]models.Violation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reporter_id, type_code, description, vehicle_number, city, state,
		       status, occurred_at, reported_at, reviewed_by, reviewed_at, review_notes
		FROM violations WHERE reporter_id = $1 ORDER BY reported_at DESC
	`, reporterID)
	if err != nil {
		logger.Log.Error("failed to query violations", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var violations []models.Violation
	for rows.Next() {
		var v models.Violation
		if err := rows.Scan(&v.ID, &v.ReporterID, &v.TypeCode, &v.Description, &v.VehicleNumber,
			&v.City, &v.State, &v.Status, &v.OccurredAt, &v.ReportedAt,
			&v.ReviewedBy, &v.ReviewedAt, &v.ReviewNotes); err != nil {
			logger.Log.Error("failed to scan violation", zap.Error(err))
			return nil, err
		}
		violations = append(violations, v)
	}
	return violations, rows.Err()
}

// UpdateReview moves a pending report to verified or rejected. The status
// guard in the WHERE clause makes officer double-submits harmless.
func (r *violationRepo) UpdateReview(ctx context.Context, id, status string, reviewerID int64, notes string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE violations SET status = $2, reviewed_by = $3, reviewed_at = now(), review_notes = $4
		WHERE id = $1 AND status = 'pending'
	`, id, status, reviewerID, notes)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	var current string
	err = r.db.QueryRowContext(ctx, `SELECT status FROM violations WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrViolationNotFound
	}
	if err != nil {
		return err
	}
	return apperrors.ErrInvalidViolationState
}

func (r *violationRepo) GetViolationType(ctx context.Context, code string) (models.ViolationType, error) {
	var vt models.ViolationType
	err := r.db.QueryRowContext(ctx, `
		SELECT code, name, description, fine_amount, is_active FROM violation_types WHERE code = $1
	`, code).Scan(&vt.Code, &vt.Name, &vt.Description, &vt.FineAmount, &vt.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ViolationType{}, apperrors.ErrInvalidViolationType
	}
	if err != nil {
		return models.ViolationType{}, err
	}
	return vt, nil
}

func (r *violationRepo) ListViolationTypes(ctx context.Context) ([]models.ViolationType, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT code, name, description, fine_amount, is_active FROM violation_types
		WHERE is_active ORDER BY code
	`)
	if err != nil {
		logger.Log.Error("failed to query violation types", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var types []models.ViolationType
	for rows.Next() {
		var vt models.ViolationType
		if err := rows.Scan(&vt.Code, &vt.Name, &vt.Description, &vt.FineAmount, &vt.IsActive); err != nil {
			logger.Log.Error("failed to scan violation type", zap.Error(err))
			return nil, err
		}
		types = append(types, vt)
	}
	return types, rows.Err()
}
