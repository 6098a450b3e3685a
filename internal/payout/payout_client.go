package payout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/logger"
	"go.uber.org/zap"
)

type PayoutStatus string

const (
	StatusPending  PayoutStatus = "PENDING"
	StatusSuccess  PayoutStatus = "SUCCESS"
	StatusFailed   PayoutStatus = "FAILED"
	StatusNotFound PayoutStatus = "NOT_FOUND"
)

type ClientInterface interface {
	SubmitPayout(ctx context.Context, req PayoutRequest) (*PayoutResponse, error)
	QueryPayoutStatus(ctx context.Context, reference string) (PayoutStatus, error)
}

// PayoutRequest carries the withdrawal to the UPI gateway. Reference is the
// withdrawal request id and doubles as the gateway-side idempotency key, so
// resubmitting after an unknown outcome cannot pay twice.
type PayoutRequest struct {
	Reference   string `json:"reference"`
	Destination string `json:"destination"`
	Amount      int64  `json:"amount"`
}

type PayoutResponse struct {
	Reference   string       `json:"reference"`
	ProviderRef string       `json:"provider_ref"`
	Status      PayoutStatus `json:"status"`
	Reason      string       `json:"reason,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout())
}

func (c *Client) SubmitPayout(ctx context.Context, payoutReq PayoutRequest) (*PayoutResponse, error) {
	body, err := json.Marshal(payoutReq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/api/payouts", c.baseURL), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			// The request may have reached the gateway; only a status query
			// can tell. Never report this as a failure.
			return nil, fmt.Errorf("%w: %v", apperrors.ErrUnknownPayoutOutcome, err)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPayoutProvider, err)
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Log.Error("failed to close payout response body", zap.Error(err))
		}
	}(resp.Body)

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusUnprocessableEntity:
		var result PayoutResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, fmt.Errorf("%w: status %d", apperrors.ErrPayoutProvider, resp.StatusCode)
		}
		result.Status = StatusFailed
		return &result, nil
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrPayoutProvider, resp.StatusCode)
	}

	var result PayoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPayoutProvider, err)
	}
	return &result, nil
}

func (c *Client) QueryPayoutStatus(ctx context.Context, reference string) (PayoutStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/payouts/%s", c.baseURL, reference), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: %v", apperrors.ErrUnknownPayoutOutcome, err)
		}
		return "", fmt.Errorf("%w: %v", apperrors.ErrPayoutProvider, err)
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Log.Error("failed to close payout response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return StatusNotFound, nil
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", apperrors.ErrPayoutProvider, resp.StatusCode)
	}

	var result PayoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrPayoutProvider, err)
	}
	return result.Status, nil
}
