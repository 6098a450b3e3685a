package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/logger"
	"github.com/snapchallan/rewards/internal/mocks/repository_mocks"
	"github.com/snapchallan/rewards/internal/models"
	"github.com/snapchallan/rewards/internal/payout"
	"go.uber.org/zap"
)

type mockPayoutClient struct {
	submitFunc func(ctx context.Context, req payout.PayoutRequest) (*payout.PayoutResponse, error)
	queryFunc  func(ctx context.Context, reference string) (payout.PayoutStatus, error)

	submitCalls int
	queryCalls  int
}

func (m *mockPayoutClient) SubmitPayout(ctx context.Context, req payout.PayoutRequest) (*payout.PayoutResponse, error) {
	m.submitCalls++
	return m.submitFunc(ctx, req)
}

func (m *mockPayoutClient) QueryPayoutStatus(ctx context.Context, reference string) (payout.PayoutStatus, error) {
	m.queryCalls++
	return m.queryFunc(ctx, reference)
}

func noExpired(repo *repository_mocks.MockWithdrawalRepository) {
	repo.EXPECT().GetExpired(gomock.Any(), gomock.Any()).Return(nil, nil)
}

func TestPayoutDispatcher_DispatchSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger.Log = zap.NewNop()
	ctx := context.Background()

	w := models.Withdrawal{ID: "w1", AccountID: 42, Amount: 1500, Destination: "citizen@upi", Status: models.WithdrawalDebited}

	repo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	noExpired(repo)
	repo.EXPECT().GetDispatchable(gomock.Any()).Return([]models.Withdrawal{w}, nil)
	repo.EXPECT().IncrementAttempts(gomock.Any(), "w1").Return(1, nil)
	repo.EXPECT().MarkDispatched(gomock.Any(), "w1", "prov-1").Return(nil)
	repo.EXPECT().Complete(gomock.Any(), "w1").Return(nil)
	repo.EXPECT().GetDispatched(gomock.Any()).Return(nil, nil)

	client := &mockPayoutClient{
		submitFunc: func(_ context.Context, req payout.PayoutRequest) (*payout.PayoutResponse, error) {
			if req.Reference != "w1" || req.Amount != 1500 {
				t.Errorf("unexpected submit request: %+v", req)
			}
			return &payout.PayoutResponse{Reference: "w1", ProviderRef: "prov-1", Status: payout.StatusSuccess}, nil
		},
	}

	d := NewPayoutDispatcher(repo, client, time.Second, 24*time.Hour)
	d.sweep(ctx)

	if client.submitCalls != 1 {
		t.Errorf("expected 1 submit call, got %d", client.submitCalls)
	}
}

func TestPayoutDispatcher_DispatchRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger.Log = zap.NewNop()

	w := models.Withdrawal{ID: "w1", AccountID: 42, Amount: 1500, Destination: "gone@upi", Status: models.WithdrawalDebited}

	repo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	noExpired(repo)
	repo.EXPECT().GetDispatchable(gomock.Any()).Return([]models.Withdrawal{w}, nil)
	repo.EXPECT().IncrementAttempts(gomock.Any(), "w1").Return(1, nil)
	repo.EXPECT().FailAndReverse(gomock.Any(), "w1", "destination VPA closed").Return(nil)
	repo.EXPECT().GetDispatched(gomock.Any()).Return(nil, nil)

	client := &mockPayoutClient{
		submitFunc: func(_ context.Context, _ payout.PayoutRequest) (*payout.PayoutResponse, error) {
			return &payout.PayoutResponse{Reference: "w1", Status: payout.StatusFailed, Reason: "destination VPA closed"}, nil
		},
	}

	NewPayoutDispatcher(repo, client, time.Second, 24*time.Hour).sweep(context.Background())
}

func TestPayoutDispatcher_TransientErrorRetriesLater(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger.Log = zap.NewNop()

	w := models.Withdrawal{ID: "w1", Status: models.WithdrawalDebited}

	repo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	noExpired(repo)
	repo.EXPECT().GetDispatchable(gomock.Any()).Return([]models.Withdrawal{w}, nil)
	repo.EXPECT().IncrementAttempts(gomock.Any(), "w1").Return(2, nil)
	repo.EXPECT().GetDispatched(gomock.Any()).Return(nil, nil)

	client := &mockPayoutClient{
		submitFunc: func(_ context.Context, _ payout.PayoutRequest) (*payout.PayoutResponse, error) {
			return nil, errors.New("connection refused")
		},
	}

	// No state transition: the request stays debited and is retried next tick.
	NewPayoutDispatcher(repo, client, time.Second, 24*time.Hour).sweep(context.Background())
}

func TestPayoutDispatcher_UnknownOutcomeQueriesBeforeDeciding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger.Log = zap.NewNop()

	w := models.Withdrawal{ID: "w1", Amount: 1500, Status: models.WithdrawalDebited}

	tests := []struct {
		name      string
		status    payout.PayoutStatus
		mockSetup func(repo *repository_mocks.MockWithdrawalRepository)
	}{
		{
			name:   "gateway confirms success",
			status: payout.StatusSuccess,
			mockSetup: func(repo *repository_mocks.MockWithdrawalRepository) {
				repo.EXPECT().MarkDispatched(gomock.Any(), "w1", "w1").Return(nil)
				repo.EXPECT().Complete(gomock.Any(), "w1").Return(nil)
			},
		},
		{
			name:   "gateway confirms failure",
			status: payout.StatusFailed,
			mockSetup: func(repo *repository_mocks.MockWithdrawalRepository) {
				repo.EXPECT().FailAndReverse(gomock.Any(), "w1", "rejected by payout provider").Return(nil)
			},
		},
		{
			name:   "gateway still processing",
			status: payout.StatusPending,
			mockSetup: func(repo *repository_mocks.MockWithdrawalRepository) {
				repo.EXPECT().MarkDispatched(gomock.Any(), "w1", "w1").Return(nil)
			},
		},
		{
			name:      "gateway never saw the submit",
			status:    payout.StatusNotFound,
			mockSetup: func(repo *repository_mocks.MockWithdrawalRepository) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository_mocks.NewMockWithdrawalRepository(ctrl)
			noExpired(repo)
			repo.EXPECT().GetDispatchable(gomock.Any()).Return([]models.Withdrawal{w}, nil)
			repo.EXPECT().IncrementAttempts(gomock.Any(), "w1").Return(1, nil)
			repo.EXPECT().GetDispatched(gomock.Any()).Return(nil, nil)
			tt.mockSetup(repo)

			client := &mockPayoutClient{
				submitFunc: func(_ context.Context, _ payout.PayoutRequest) (*payout.PayoutResponse, error) {
					return nil, apperrors.ErrUnknownPayoutOutcome
				},
				queryFunc: func(_ context.Context, reference string) (payout.PayoutStatus, error) {
					return tt.status, nil
				},
			}

			NewPayoutDispatcher(repo, client, time.Second, 24*time.Hour).sweep(context.Background())

			if client.queryCalls != 1 {
				t.Errorf("expected exactly one status query, got %d", client.queryCalls)
			}
		})
	}
}

func TestPayoutDispatcher_MaxAttemptsReverses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger.Log = zap.NewNop()

	w := models.Withdrawal{ID: "w1", Status: models.WithdrawalDebited}

	repo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	noExpired(repo)
	repo.EXPECT().GetDispatchable(gomock.Any()).Return([]models.Withdrawal{w}, nil)
	repo.EXPECT().IncrementAttempts(gomock.Any(), "w1").Return(maxDispatchAttempts+1, nil)
	repo.EXPECT().FailAndReverse(gomock.Any(), "w1", "max dispatch attempts exceeded").Return(nil)
	repo.EXPECT().GetDispatched(gomock.Any()).Return(nil, nil)

	client := &mockPayoutClient{}

	NewPayoutDispatcher(repo, client, time.Second, 24*time.Hour).sweep(context.Background())

	if client.submitCalls != 0 {
		t.Errorf("expected no submit once attempts are exhausted, got %d", client.submitCalls)
	}
}

func TestPayoutDispatcher_ExpiredWithdrawalsReversed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger.Log = zap.NewNop()

	sla := 24 * time.Hour
	overdue := models.Withdrawal{ID: "w-old", Status: models.WithdrawalDebited}

	repo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	repo.EXPECT().GetExpired(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cutoff time.Time) ([]models.Withdrawal, error) {
			if until := time.Until(cutoff); until > -sla+time.Minute || until < -sla-time.Minute {
				t.Errorf("cutoff %v is not one SLA window in the past", cutoff)
			}
			return []models.Withdrawal{overdue}, nil
		})
	repo.EXPECT().FailAndReverse(gomock.Any(), "w-old", "not dispatched within SLA window").Return(nil)
	repo.EXPECT().GetDispatchable(gomock.Any()).Return(nil, nil)
	repo.EXPECT().GetDispatched(gomock.Any()).Return(nil, nil)

	client := &mockPayoutClient{}

	NewPayoutDispatcher(repo, client, time.Second, sla).sweep(context.Background())
}

func TestPayoutDispatcher_ResolvesDispatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger.Log = zap.NewNop()

	dispatched := []models.Withdrawal{
		{ID: "w-ok", Status: models.WithdrawalDispatched},
		{ID: "w-bad", Status: models.WithdrawalDispatched},
		{ID: "w-wait", Status: models.WithdrawalDispatched},
	}

	repo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	noExpired(repo)
	repo.EXPECT().GetDispatchable(gomock.Any()).Return(nil, nil)
	repo.EXPECT().GetDispatched(gomock.Any()).Return(dispatched, nil)
	repo.EXPECT().Complete(gomock.Any(), "w-ok").Return(nil)
	repo.EXPECT().FailAndReverse(gomock.Any(), "w-bad", "rejected by payout provider").Return(nil)

	client := &mockPayoutClient{
		queryFunc: func(_ context.Context, reference string) (payout.PayoutStatus, error) {
			switch reference {
			case "w-ok":
				return payout.StatusSuccess, nil
			case "w-bad":
				return payout.StatusFailed, nil
			default:
				return payout.StatusPending, nil
			}
		},
	}

	NewPayoutDispatcher(repo, client, time.Second, 24*time.Hour).sweep(context.Background())

	if client.queryCalls != 3 {
		t.Errorf("expected 3 status queries, got %d", client.queryCalls)
	}
}

func TestPayoutDispatcher_RunStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger.Log = zap.NewNop()

	repo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	client := &mockPayoutClient{}

	d := NewPayoutDispatcher(repo, client, time.Hour, 24*time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop after context cancellation")
	}
}
