package models

import "time"

const (
	WithdrawalRequested  = "requested"
	WithdrawalDebited    = "debited"
	WithdrawalDispatched = "dispatched"
	WithdrawalCompleted  = "completed"
	WithdrawalFailed     = "failed"
	WithdrawalReversed   = "reversed"
)

// Withdrawal moves funds from a wallet to a UPI address. The request id
// doubles as the ledger reference and as the idempotency reference sent to
// the payout provider.
type Withdrawal struct {
	ID            string     `json:"id" db:"id"`
	AccountID     int64      `json:"-" db:"account_id"`
	Amount        int64      `json:"amount" db:"amount"`
	Destination   string     `json:"destination" db:"destination"`
	Status        string     `json:"status" db:"status"`
	ProviderRef   string     `json:"-" db:"provider_reference"`
	Attempts      int        `json:"-" db:"attempts"`
	FailureReason string     `json:"failure_reason,omitempty" db:"failure_reason"`
	RequestedAt   time.Time  `json:"requested_at" db:"requested_at"`
	DebitedAt     *time.Time `json:"debited_at,omitempty" db:"debited_at"`
	DispatchedAt  *time.Time `json:"dispatched_at,omitempty" db:"dispatched_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	FailedAt      *time.Time `json:"failed_at,omitempty" db:"failed_at"`
	ReversedAt    *time.Time `json:"reversed_at,omitempty" db:"reversed_at"`
}

type WithdrawalRequest struct {
	Amount      int64  `json:"amount"`
	Destination string `json:"destination"`
}
