package models

import "time"

const (
	KindCreditReward    = "credit_reward"
	KindDebitWithdrawal = "debit_withdrawal"
	KindDebitReversal   = "debit_reversal"

	EntryStatusPending = "pending"
	EntryStatusSettled = "settled"
	EntryStatusFailed  = "failed"
)

// LedgerEntry is an immutable bookkeeping record. Amount is signed and
// expressed in paise; a settled entry is never edited, corrections are
// appended as reversal entries.
type LedgerEntry struct {
	ID          string    `json:"id" db:"id"`
	AccountID   int64     `json:"-" db:"account_id"`
	Amount      int64     `json:"amount" db:"amount"`
	Kind        string    `json:"kind" db:"kind"`
	ReferenceID string    `json:"reference_id" db:"reference_id"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// LedgerEntryDraft is what callers hand to the repository; the entry id and
// creation time are assigned on insert.
type LedgerEntryDraft struct {
	AccountID   int64
	Amount      int64
	Kind        string
	ReferenceID string
}
