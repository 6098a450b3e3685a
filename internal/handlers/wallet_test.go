package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/logger"
	"github.com/snapchallan/rewards/internal/middleware"
	"github.com/snapchallan/rewards/internal/mocks/service_mocks"
	"github.com/snapchallan/rewards/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func authedRequest(method, target string, body []byte, userID int64) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestHandler_GetWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger.Log = zap.NewNop()

	statement := models.WalletStatement{
		Settled:   2000,
		Available: 500,
		Entries: []models.LedgerEntry{
			{ID: "e1", Amount: 2000, Kind: models.KindCreditReward, Status: models.EntryStatusSettled},
		},
	}

	tests := []struct {
		name       string
		authorized bool
		mockSetup  func(svc *service_mocks.MockWalletService)
		wantStatus int
	}{
		{
			name:       "returns statement",
			authorized: true,
			mockSetup: func(svc *service_mocks.MockWalletService) {
				svc.EXPECT().GetWallet(gomock.Any(), int64(42)).Return(statement, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no user in context",
			authorized: false,
			mockSetup:  func(svc *service_mocks.MockWalletService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "service error",
			authorized: true,
			mockSetup: func(svc *service_mocks.MockWalletService) {
				svc.EXPECT().GetWallet(gomock.Any(), int64(42)).
					Return(models.WalletStatement{}, apperrors.ErrInternalServer)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			walletSvc := service_mocks.NewMockWalletService(ctrl)
			tt.mockSetup(walletSvc)

			h := &Handler{walletService: walletSvc}

			var req *http.Request
			if tt.authorized {
				req = authedRequest(http.MethodGet, "/api/user/wallet", nil, 42)
			} else {
				req = httptest.NewRequest(http.MethodGet, "/api/user/wallet", nil)
			}

			rec := httptest.NewRecorder()
			h.GetWallet(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var got models.WalletStatement
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, statement, got)
			}
		})
	}
}

func TestHandler_Withdraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger.Log = zap.NewNop()

	tests := []struct {
		name       string
		body       string
		mockSetup  func(svc *service_mocks.MockWithdrawalService)
		wantStatus int
	}{
		{
			name: "accepted",
			body: `{"amount":1500,"destination":"citizen@upi"}`,
			mockSetup: func(svc *service_mocks.MockWithdrawalService) {
				svc.EXPECT().RequestWithdrawal(gomock.Any(), int64(42), models.WithdrawalRequest{Amount: 1500, Destination: "citizen@upi"}).
					Return(models.Withdrawal{ID: "w1", Amount: 1500, Destination: "citizen@upi", Status: models.WithdrawalDebited}, nil)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name: "insufficient funds",
			body: `{"amount":999999,"destination":"citizen@upi"}`,
			mockSetup: func(svc *service_mocks.MockWithdrawalService) {
				svc.EXPECT().RequestWithdrawal(gomock.Any(), int64(42), gomock.Any()).
					Return(models.Withdrawal{}, apperrors.ErrInsufficientFunds)
			},
			wantStatus: http.StatusPaymentRequired,
		},
		{
			name: "invalid sum",
			body: `{"amount":0,"destination":"citizen@upi"}`,
			mockSetup: func(svc *service_mocks.MockWithdrawalService) {
				svc.EXPECT().RequestWithdrawal(gomock.Any(), int64(42), gomock.Any()).
					Return(models.Withdrawal{}, apperrors.ErrInvalidWithdrawalSum)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid destination",
			body: `{"amount":1500,"destination":"not a vpa"}`,
			mockSetup: func(svc *service_mocks.MockWithdrawalService) {
				svc.EXPECT().RequestWithdrawal(gomock.Any(), int64(42), gomock.Any()).
					Return(models.Withdrawal{}, apperrors.ErrInvalidDestination)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "frozen account",
			body: `{"amount":1500,"destination":"citizen@upi"}`,
			mockSetup: func(svc *service_mocks.MockWithdrawalService) {
				svc.EXPECT().RequestWithdrawal(gomock.Any(), int64(42), gomock.Any()).
					Return(models.Withdrawal{}, apperrors.ErrAccountFrozen)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "malformed body",
			body:       `{`,
			mockSetup:  func(svc *service_mocks.MockWithdrawalService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withdrawalSvc := service_mocks.NewMockWithdrawalService(ctrl)
			tt.mockSetup(withdrawalSvc)

			h := &Handler{withdrawalService: withdrawalSvc}

			req := authedRequest(http.MethodPost, "/api/user/wallet/withdraw", []byte(tt.body), 42)
			rec := httptest.NewRecorder()
			h.Withdraw(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_GetWithdrawals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger.Log = zap.NewNop()

	tests := []struct {
		name        string
		withdrawals []models.Withdrawal
		wantStatus  int
	}{
		{
			name: "returns history",
			withdrawals: []models.Withdrawal{
				{ID: "w1", Amount: 1000, Status: models.WithdrawalCompleted},
				{ID: "w2", Amount: 500, Status: models.WithdrawalReversed, FailureReason: "not dispatched within SLA window"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty history",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withdrawalSvc := service_mocks.NewMockWithdrawalService(ctrl)
			withdrawalSvc.EXPECT().GetWithdrawals(gomock.Any(), int64(42)).Return(tt.withdrawals, nil)

			h := &Handler{withdrawalService: withdrawalSvc}

			req := authedRequest(http.MethodGet, "/api/user/wallet/withdrawals", nil, 42)
			rec := httptest.NewRecorder()
			h.GetWithdrawals(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var got []models.Withdrawal
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Len(t, got, len(tt.withdrawals))
			}
		})
	}
}
