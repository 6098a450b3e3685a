package models

// Wallet is the projection of an account's ledger: Settled is the cached sum
// of settled entries, Available subtracts debits that are still pending
// payout dispatch.
type Wallet struct {
	Settled   int64 `json:"settled" db:"settled"`
	Available int64 `json:"available" db:"available"`
}

type WalletStatement struct {
	Settled   int64         `json:"settled"`
	Available int64         `json:"available"`
	Entries   []LedgerEntry `json:"recent_entries"`
}
