package service

import (
	"context"
	"errors"

	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/logger"
	"github.com/snapchallan/rewards/internal/models"
	"github.com/snapchallan/rewards/internal/repository"
	"go.uber.org/zap"
)

// Citizens get 40% of the challan amount, floored to the paisa.
const rewardPercent = 40

type RewardService interface {
	OnChallanPaid(ctx context.Context, violationID string, challanAmount int64) (models.LedgerEntry, error)
}

type rewardService struct {
	violationRepo repository.ViolationRepository
	ledgerRepo    repository.LedgerRepository
}

func NewRewardService(violationRepo repository.ViolationRepository, ledgerRepo repository.LedgerRepository) RewardService {
	return &rewardService{
		violationRepo: violationRepo,
		ledgerRepo:    ledgerRepo,
	}
}

func rewardFor(challanAmount int64) int64 {
	return challanAmount * rewardPercent / 100
}

// OnChallanPaid credits the reporter once per violation. The challan system
// delivers paid notifications at least once, so redelivery and concurrent
// delivery both have to collapse onto the single entry: the fast path answers
// from the existing entry, and the race between two first deliveries is
// decided by the ledger's uniqueness constraint.
func (s *rewardService) OnChallanPaid(ctx context.Context, violationID string, challanAmount int64) (models.LedgerEntry, error) {
	if challanAmount <= 0 {
		return models.LedgerEntry{}, apperrors.ErrInvalidRequest
	}

	violation, err := s.violationRepo.GetViolation(ctx, violationID)
	if err != nil {
		return models.LedgerEntry{}, err
	}

	entry, err := s.ledgerRepo.GetEntryByReference(ctx, violation.ReporterID, violationID, models.KindCreditReward)
	if err == nil {
		logger.Log.Info("challan paid redelivered, returning existing reward entry",
			zap.String("violation", violationID), zap.String("entry", entry.ID))
		return entry, nil
	}
	if !errors.Is(err, apperrors.ErrEntryNotFound) {
		return models.LedgerEntry{}, err
	}

	if violation.Status != models.ViolationVerified {
		return models.LedgerEntry{}, apperrors.ErrInvalidViolationState
	}

	entry, err = s.ledgerRepo.CreditReward(ctx, models.LedgerEntryDraft{
		AccountID:   violation.ReporterID,
		Amount:      rewardFor(challanAmount),
		Kind:        models.KindCreditReward,
		ReferenceID: violationID,
	})
	if errors.Is(err, apperrors.ErrDuplicateEntry) {
		// Lost the race against a concurrent delivery; the winner's entry is
		// the answer.
		return s.ledgerRepo.GetEntryByReference(ctx, violation.ReporterID, violationID, models.KindCreditReward)
	}
	if err != nil {
		return models.LedgerEntry{}, err
	}

	logger.Log.Info("reward credited",
		zap.String("violation", violationID),
		zap.Int64("account", entry.AccountID),
		zap.Int64("amount", entry.Amount))
	return entry, nil
}
