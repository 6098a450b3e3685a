package service

import (
	"context"

	"github.com/snapchallan/rewards/internal/models"
	"github.com/snapchallan/rewards/internal/repository"
)

const recentEntriesLimit = 20

type WalletService interface {
	GetWallet(ctx context.Context, accountID int64) (models.WalletStatement, error)
	AuditBalance(ctx context.Context, accountID int64) error
}

type walletService struct {
	repo repository.LedgerRepository
}

func NewWalletService(repo repository.LedgerRepository) WalletService {
	return &walletService{repo: repo}
}

func (s *walletService) GetWallet(ctx context.Context, accountID int64) (models.WalletStatement, error) {
	wallet, err := s.repo.GetBalance(ctx, accountID)
	if err != nil {
		return models.WalletStatement{}, err
	}

	entries, err := s.repo.RecentEntries(ctx, accountID, recentEntriesLimit)
	if err != nil {
		return models.WalletStatement{}, err
	}

	return models.WalletStatement{
		Settled:   wallet.Settled,
		Available: wallet.Available,
		Entries:   entries,
	}, nil
}

func (s *walletService) AuditBalance(ctx context.Context, accountID int64) error {
	return s.repo.VerifyBalance(ctx, accountID)
}
