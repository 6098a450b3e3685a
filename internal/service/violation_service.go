package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/models"
	"github.com/snapchallan/rewards/internal/repository"
)

type ViolationService interface {
	SubmitReport(ctx context.Context, reporterID int64, report models.ViolationReport) (models.Violation, error)
	GetReporterViolations(ctx context.Context, reporterID int64) ([]models.Violation, error)
	Verify(ctx context.Context, officerID int64, violationID, notes string) error
	Reject(ctx context.Context, officerID int64, violationID, notes string) error
	ListTypes(ctx context.Context) ([]models.ViolationType, error)
}

type violationService struct {
	repo repository.ViolationRepository
}

func NewViolationService(repo repository.ViolationRepository) ViolationService {
	return &violationService{repo: repo}
}

func (s *violationService) SubmitReport(ctx context.Context, reporterID int64, report models.ViolationReport) (models.Violation, error) {
	if strings.TrimSpace(report.Description) == "" || report.OccurredAt.IsZero() {
		return models.Violation{}, apperrors.ErrInvalidRequest
	}
	if report.OccurredAt.After(time.Now()) {
		return models.Violation{}, apperrors.ErrInvalidRequest
	}

	violationType, err := s.repo.GetViolationType(ctx, report.TypeCode)
	if err != nil {
		return models.Violation{}, err
	}
	if !violationType.IsActive {
		return models.Violation{}, apperrors.ErrInvalidViolationType
	}

	violation := models.Violation{
		ID:            uuid.NewString(),
		ReporterID:    reporterID,
		TypeCode:      report.TypeCode,
		Description:   report.Description,
		VehicleNumber: strings.ToUpper(strings.ReplaceAll(report.VehicleNumber, " ", "")),
		City:          report.City,
		State:         report.State,
		Status:        models.ViolationPending,
		OccurredAt:    report.OccurredAt,
	}

	if err := s.repo.SaveViolation(ctx, &violation); err != nil {
		return models.Violation{}, err
	}
	return violation, nil
}

func (s *violationService) GetReporterViolations(ctx context.Context, reporterID int64) ([]models.Violation, error) {
	return s.repo.GetViolationsByReporter(ctx, reporterID)
}

func (s *violationService) Verify(ctx context.Context, officerID int64, violationID, notes string) error {
	return s.repo.UpdateReview(ctx, violationID, models.ViolationVerified, officerID, notes)
}

func (s *violationService) Reject(ctx context.Context, officerID int64, violationID, notes string) error {
	return s.repo.UpdateReview(ctx, violationID, models.ViolationRejected, officerID, notes)
}

func (s *violationService) ListTypes(ctx context.Context) ([]models.ViolationType, error) {
	return s.repo.ListViolationTypes(ctx)
}
