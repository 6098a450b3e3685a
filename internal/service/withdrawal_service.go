package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/models"
	"github.com/snapchallan/rewards/internal/repository"
	"github.com/snapchallan/rewards/internal/utils"
)

type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, accountID int64, req models.WithdrawalRequest) (models.Withdrawal, error)
	GetWithdrawals(ctx context.Context, accountID int64) ([]models.Withdrawal, error)
}

type withdrawalService struct {
	repo repository.WithdrawalRepository
}

func NewWithdrawalService(repo repository.WithdrawalRepository) WithdrawalService {
	return &withdrawalService{repo: repo}
}

func (s *withdrawalService) RequestWithdrawal(ctx context.Context, accountID int64, req models.WithdrawalRequest) (models.Withdrawal, error) {
	if req.Amount <= 0 {
		return models.Withdrawal{}, apperrors.ErrInvalidWithdrawalSum
	}

	if !utils.IsValidVPA(req.Destination) {
		return models.Withdrawal{}, apperrors.ErrInvalidDestination
	}

	withdrawal := models.Withdrawal{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		Amount:      req.Amount,
		Destination: req.Destination,
		Status:      models.WithdrawalRequested,
	}

	return s.repo.CreateWithdrawal(ctx, withdrawal)
}

func (s *withdrawalService) GetWithdrawals(ctx context.Context, accountID int64) ([]models.Withdrawal, error) {
	return s.repo.GetWithdrawals(ctx, accountID)
}
