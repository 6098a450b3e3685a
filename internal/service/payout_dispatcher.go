package service

import (
	"context"
	"errors"
	"time"

	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/logger"
	"github.com/snapchallan/rewards/internal/models"
	"github.com/snapchallan/rewards/internal/payout"
	"github.com/snapchallan/rewards/internal/repository"
	"go.uber.org/zap"
)

const (
	maxDispatchAttempts = 5
	submitTimeout       = 10 * time.Second
)

// PayoutDispatcher drives withdrawals through their state machine from the
// background: debited requests are submitted to the gateway, dispatched ones
// are resolved by status query, and anything still undischarged past the SLA
// window is failed and reversed.
type PayoutDispatcher struct {
	repo         repository.WithdrawalRepository
	payoutClient payout.ClientInterface
	pollInterval time.Duration
	sla          time.Duration
}

func NewPayoutDispatcher(repo repository.WithdrawalRepository, client payout.ClientInterface, interval, sla time.Duration) *PayoutDispatcher {
	return &PayoutDispatcher{
		repo:         repo,
		payoutClient: client,
		pollInterval: interval,
		sla:          sla,
	}
}

func (d *PayoutDispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.sweep(ctx)
		}
	}
}

func (d *PayoutDispatcher) sweep(ctx context.Context) {
	d.expireOverdue(ctx)
	d.dispatchPending(ctx)
	d.resolveDispatched(ctx)
}

func (d *PayoutDispatcher) expireOverdue(ctx context.Context) {
	expired, err := d.repo.GetExpired(ctx, time.Now().Add(-d.sla))
	if err != nil {
		logger.Log.Error("failed to get expired withdrawals", zap.Error(err))
		return
	}

	for _, w := range expired {
		if err := d.repo.FailAndReverse(ctx, w.ID, "not dispatched within SLA window"); err != nil {
			logger.Log.Error("failed to reverse expired withdrawal", zap.String("withdrawal", w.ID), zap.Error(err))
			continue
		}
		logger.Log.Warn("withdrawal expired and reversed", zap.String("withdrawal", w.ID))
	}
}

func (d *PayoutDispatcher) dispatchPending(ctx context.Context) {
	pending, err := d.repo.GetDispatchable(ctx)
	if err != nil {
		logger.Log.Error("failed to get dispatchable withdrawals", zap.Error(err))
		return
	}

	for _, w := range pending {
		d.dispatch(ctx, w)
	}
}

func (d *PayoutDispatcher) dispatch(ctx context.Context, w models.Withdrawal) {
	attempts, err := d.repo.IncrementAttempts(ctx, w.ID)
	if err != nil {
		logger.Log.Error("failed to bump attempts", zap.String("withdrawal", w.ID), zap.Error(err))
		return
	}
	if attempts > maxDispatchAttempts {
		if err := d.repo.FailAndReverse(ctx, w.ID, "max dispatch attempts exceeded"); err != nil {
			logger.Log.Error("failed to reverse withdrawal", zap.String("withdrawal", w.ID), zap.Error(err))
		}
		return
	}

	submitCtx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()

	resp, err := d.payoutClient.SubmitPayout(submitCtx, payout.PayoutRequest{
		Reference:   w.ID,
		Destination: w.Destination,
		Amount:      w.Amount,
	})

	switch {
	case errors.Is(err, apperrors.ErrUnknownPayoutOutcome):
		// The submit may or may not have landed. Ask the gateway instead of
		// guessing; an unresolvable answer leaves the request debited and the
		// idempotent reference makes the next submit attempt safe.
		d.resolveUnknown(ctx, w)
	case err != nil:
		logger.Log.Warn("payout submit failed, will retry",
			zap.String("withdrawal", w.ID), zap.Int("attempt", attempts), zap.Error(err))
	default:
		d.applySubmitResponse(ctx, w, resp)
	}
}

func (d *PayoutDispatcher) applySubmitResponse(ctx context.Context, w models.Withdrawal, resp *payout.PayoutResponse) {
	switch resp.Status {
	case payout.StatusSuccess:
		if err := d.repo.MarkDispatched(ctx, w.ID, resp.ProviderRef); err != nil {
			logger.Log.Error("failed to mark dispatched", zap.String("withdrawal", w.ID), zap.Error(err))
			return
		}
		if err := d.repo.Complete(ctx, w.ID); err != nil {
			logger.Log.Error("failed to complete withdrawal", zap.String("withdrawal", w.ID), zap.Error(err))
			return
		}
		logger.Log.Info("withdrawal completed", zap.String("withdrawal", w.ID))
	case payout.StatusFailed:
		reason := resp.Reason
		if reason == "" {
			reason = "rejected by payout provider"
		}
		if err := d.repo.FailAndReverse(ctx, w.ID, reason); err != nil {
			logger.Log.Error("failed to reverse withdrawal", zap.String("withdrawal", w.ID), zap.Error(err))
			return
		}
		logger.Log.Warn("withdrawal failed and reversed", zap.String("withdrawal", w.ID), zap.String("reason", reason))
	default:
		if err := d.repo.MarkDispatched(ctx, w.ID, resp.ProviderRef); err != nil {
			logger.Log.Error("failed to mark dispatched", zap.String("withdrawal", w.ID), zap.Error(err))
		}
	}
}

func (d *PayoutDispatcher) resolveUnknown(ctx context.Context, w models.Withdrawal) {
	status, err := d.payoutClient.QueryPayoutStatus(ctx, w.ID)
	if err != nil {
		logger.Log.Warn("payout status query failed after unknown outcome",
			zap.String("withdrawal", w.ID), zap.Error(err))
		return
	}

	switch status {
	case payout.StatusSuccess:
		if err := d.repo.MarkDispatched(ctx, w.ID, w.ID); err != nil {
			logger.Log.Error("failed to mark dispatched", zap.String("withdrawal", w.ID), zap.Error(err))
			return
		}
		if err := d.repo.Complete(ctx, w.ID); err != nil {
			logger.Log.Error("failed to complete withdrawal", zap.String("withdrawal", w.ID), zap.Error(err))
		}
	case payout.StatusFailed:
		if err := d.repo.FailAndReverse(ctx, w.ID, "rejected by payout provider"); err != nil {
			logger.Log.Error("failed to reverse withdrawal", zap.String("withdrawal", w.ID), zap.Error(err))
		}
	case payout.StatusPending:
		if err := d.repo.MarkDispatched(ctx, w.ID, w.ID); err != nil {
			logger.Log.Error("failed to mark dispatched", zap.String("withdrawal", w.ID), zap.Error(err))
		}
	case payout.StatusNotFound:
		// The submit never reached the gateway; the request stays debited
		// and is resubmitted next tick.
	}
}

func (d *PayoutDispatcher) resolveDispatched(ctx context.Context) {
	dispatched, err := d.repo.GetDispatched(ctx)
	if err != nil {
		logger.Log.Error("failed to get dispatched withdrawals", zap.Error(err))
		return
	}

	for _, w := range dispatched {
		status, err := d.payoutClient.QueryPayoutStatus(ctx, w.ID)
		if err != nil {
			logger.Log.Warn("failed to query payout status", zap.String("withdrawal", w.ID), zap.Error(err))
			continue
		}

		switch status {
		case payout.StatusSuccess:
			if err := d.repo.Complete(ctx, w.ID); err != nil {
				logger.Log.Error("failed to complete withdrawal", zap.String("withdrawal", w.ID), zap.Error(err))
				continue
			}
			logger.Log.Info("withdrawal completed", zap.String("withdrawal", w.ID))
		case payout.StatusFailed:
			if err := d.repo.FailAndReverse(ctx, w.ID, "rejected by payout provider"); err != nil {
				logger.Log.Error("failed to reverse withdrawal", zap.String("withdrawal", w.ID), zap.Error(err))
				continue
			}
			logger.Log.Warn("withdrawal failed and reversed", zap.String("withdrawal", w.ID))
		}
	}
}
