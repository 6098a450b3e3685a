package apperrors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidAuthHeader  = errors.New("invalid or missing Authorization header")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid phone number or password")

	// Ledger
	ErrDuplicateEntry  = errors.New("ledger entry already exists for reference")
	ErrEntryNotFound   = errors.New("ledger entry not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountFrozen   = errors.New("account frozen pending reconciliation")
	ErrLedgerCorrupted = errors.New("ledger balance diverges from entry sum")

	// Rewards
	ErrViolationNotFound     = errors.New("violation not found")
	ErrInvalidViolationState = errors.New("violation is not in a creditable state")
	ErrInvalidViolationType  = errors.New("unknown or inactive violation type")

	// Withdrawals
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrInvalidWithdrawalSum   = errors.New("invalid withdrawal sum")
	ErrInvalidDestination     = errors.New("invalid payout destination")
	ErrWithdrawalNotFound     = errors.New("withdrawal request not found")
	ErrPayoutProvider         = errors.New("payout provider error")
	ErrUnknownPayoutOutcome   = errors.New("payout outcome unknown")
	ErrWithdrawalNotDebitable = errors.New("withdrawal is not in a transitionable state")
)
