package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/logger"
	"github.com/snapchallan/rewards/internal/models"
	"go.uber.org/zap"
)

type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, w models.Withdrawal) (models.Withdrawal, error)
	GetWithdrawal(ctx context.Context, id string) (models.Withdrawal, error)
	GetWithdrawals(ctx context.Context, accountID int64) ([]models.Withdrawal, error)
	GetDispatchable(ctx context.Context) ([]models.Withdrawal, error)
	GetDispatched(ctx context.Context) ([]models.Withdrawal, error)
	GetExpired(ctx context.Context, deadline time.Time) ([]models.Withdrawal, error)
	MarkDispatched(ctx context.Context, id, providerRef string) error
	IncrementAttempts(ctx context.Context, id string) (int, error)
	Complete(ctx context.Context, id string) error
	FailAndReverse(ctx context.Context, id, reason string) error
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

const withdrawalColumns = `id, account_id, amount, destination, status, provider_reference,
	attempts, failure_reason, requested_at, debited_at, dispatched_at, completed_at, failed_at, reversed_at`

// CreateWithdrawal places a hold on the wallet: the request row and the
// pending debit entry are inserted in one transaction, after checking the
// available balance under an exclusive lock on the account row. Two
// concurrent requests for the same account therefore serialize, and the
// second one sees the first one's hold.
func (r *withdrawalRepo) CreateWithdrawal(ctx context.Context, w models.Withdrawal) (models.Withdrawal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Withdrawal{}, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	var (
		balance int64
		frozen  bool
	)
	err = tx.QueryRowContext(ctx, `
		SELECT balance, frozen FROM accounts WHERE user_id = $1 FOR UPDATE
	`, w.AccountID).Scan(&balance, &frozen)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrAccountNotFound
		return models.Withdrawal{}, err
	}
	if err != nil {
		return models.Withdrawal{}, err
	}
	if frozen {
		err = apperrors.ErrAccountFrozen
		return models.Withdrawal{}, err
	}

	var pendingDebits int64
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(-amount), 0) FROM ledger_entries
		WHERE account_id = $1 AND status = 'pending' AND amount < 0
	`, w.AccountID).Scan(&pendingDebits)
	if err != nil {
		return models.Withdrawal{}, err
	}

	if w.Amount > balance-pendingDebits {
		err = apperrors.ErrInsufficientFunds
		return models.Withdrawal{}, err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO withdrawal_requests (id, account_id, amount, destination, status)
		VALUES ($1, $2, $3, $4, 'requested')
		RETURNING requested_at
	`, w.ID, w.AccountID, w.Amount, w.Destination).Scan(&w.RequestedAt)
	if err != nil {
		return models.Withdrawal{}, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ledger_entries (id, account_id, amount, kind, reference_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), w.AccountID, -w.Amount, models.KindDebitWithdrawal, w.ID, models.EntryStatusPending)
	if isUniqueViolation(err) {
		err = apperrors.ErrDuplicateEntry
		return models.Withdrawal{}, err
	}
	if err != nil {
		return models.Withdrawal{}, err
	}

	var debitedAt time.Time
	err = tx.QueryRowContext(ctx, `
		UPDATE withdrawal_requests SET status = 'debited', debited_at = now()
		WHERE id = $1
		RETURNING debited_at
	`, w.ID).Scan(&debitedAt)
	if err != nil {
		return models.Withdrawal{}, err
	}

	err = tx.Commit()
	if err != nil {
		return models.Withdrawal{}, err
	}

	w.Status = models.WithdrawalDebited
	w.DebitedAt = &debitedAt
	return w, nil
}

func (r *withdrawalRepo) GetWithdrawal(ctx context.Context, id string) (models.Withdrawal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawal_requests WHERE id = $1
	`, id)

	w, err := scanWithdrawal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Withdrawal{}, apperrors.ErrWithdrawalNotFound
	}
	return w, err
}

func (r *withdrawalRepo) GetWithdrawals(ctx context.Context, accountID int64) ([]models.Withdrawal, error) {
	return r.queryWithdrawals(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawal_requests
		WHERE account_id = $1 ORDER BY requested_at DESC
	`, accountID)
}

func (r *withdrawalRepo) GetDispatchable(ctx context.Context) ([]models.Withdrawal, error) {
	return r.queryWithdrawals(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawal_requests
		WHERE status = 'debited' ORDER BY requested_at ASC
	`)
}

func (r *withdrawalRepo) GetDispatched(ctx context.Context) ([]models.Withdrawal, error) {
	return r.queryWithdrawals(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawal_requests
		WHERE status = 'dispatched' ORDER BY dispatched_at ASC
	`)
}

func (r *withdrawalRepo) GetExpired(ctx context.Context, deadline time.Time) ([]models.Withdrawal, error) {
	return r.queryWithdrawals(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawal_requests
		WHERE status = 'debited' AND debited_at < $1 ORDER BY requested_at ASC
	`, deadline)
}

func (r *withdrawalRepo) MarkDispatched(ctx context.Context, id, providerRef string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE withdrawal_requests
		SET status = 'dispatched', provider_reference = $2, dispatched_at = now()
		WHERE id = $1 AND status = 'debited'
	`, id, providerRef)
	if err != nil {
		return err
	}
	return checkTransition(ctx, r.db, res, id, models.WithdrawalDispatched)
}

func (r *withdrawalRepo) IncrementAttempts(ctx context.Context, id string) (int, error) {
	var attempts int
	err := r.db.QueryRowContext(ctx, `
		UPDATE withdrawal_requests SET attempts = attempts + 1 WHERE id = $1
		RETURNING attempts
	`, id).Scan(&attempts)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperrors.ErrWithdrawalNotFound
	}
	return attempts, err
}

// Complete settles the pending debit: the hold becomes a real deduction from
// the balance cache and the request reaches its terminal success state.
func (r *withdrawalRepo) Complete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	var accountID int64
	err = tx.QueryRowContext(ctx, `
		SELECT account_id FROM withdrawal_requests WHERE id = $1 FOR UPDATE
	`, id).Scan(&accountID)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrWithdrawalNotFound
		return err
	}
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `
		SELECT balance FROM accounts WHERE user_id = $1 FOR UPDATE
	`, accountID); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE withdrawal_requests SET status = 'completed', completed_at = now()
		WHERE id = $1 AND status = 'dispatched'
	`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Retried after a prior successful completion is a no-op.
		var status string
		if err = tx.QueryRowContext(ctx, `
			SELECT status FROM withdrawal_requests WHERE id = $1
		`, id).Scan(&status); err != nil {
			return err
		}
		if status == models.WithdrawalCompleted {
			err = tx.Commit()
			return err
		}
		err = apperrors.ErrWithdrawalNotDebitable
		return err
	}

	var amount int64
	err = tx.QueryRowContext(ctx, `
		UPDATE ledger_entries SET status = 'settled'
		WHERE account_id = $1 AND reference_id = $2 AND kind = $3 AND status = 'pending'
		RETURNING amount
	`, accountID, id, models.KindDebitWithdrawal).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrEntryNotFound
		return err
	}
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE accounts SET balance = balance + $1 WHERE user_id = $2
	`, amount, accountID); err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

// FailAndReverse settles the debit and appends the compensating reversal
// credit in the same transaction, so the net effect on the balance cache is
// zero and the hold disappears. Safe to retry: a request already reversed is
// a no-op, and a crash between the failed and reversed transitions is
// repaired on the next call.
func (r *withdrawalRepo) FailAndReverse(ctx context.Context, id, reason string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	var (
		accountID int64
		status    string
	)
	err = tx.QueryRowContext(ctx, `
		SELECT account_id, status FROM withdrawal_requests WHERE id = $1 FOR UPDATE
	`, id).Scan(&accountID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrWithdrawalNotFound
		return err
	}
	if err != nil {
		return err
	}

	switch status {
	case models.WithdrawalReversed:
		err = tx.Commit()
		return err
	case models.WithdrawalDebited, models.WithdrawalDispatched, models.WithdrawalFailed:
	default:
		err = apperrors.ErrWithdrawalNotDebitable
		return err
	}

	if _, err = tx.ExecContext(ctx, `
		SELECT balance FROM accounts WHERE user_id = $1 FOR UPDATE
	`, accountID); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE withdrawal_requests SET status = 'failed', failed_at = now(), failure_reason = $2
		WHERE id = $1 AND status <> 'failed'
	`, id, reason); err != nil {
		return err
	}

	var amount int64
	err = tx.QueryRowContext(ctx, `
		UPDATE ledger_entries SET status = 'settled'
		WHERE account_id = $1 AND reference_id = $2 AND kind = $3 AND status = 'pending'
		RETURNING amount
	`, accountID, id, models.KindDebitWithdrawal).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		// Debit already settled by an earlier partial run; recover its amount.
		err = tx.QueryRowContext(ctx, `
			SELECT amount FROM ledger_entries
			WHERE account_id = $1 AND reference_id = $2 AND kind = $3 AND status = 'settled'
		`, accountID, id, models.KindDebitWithdrawal).Scan(&amount)
	}
	if err != nil {
		return err
	}

	// The settled debit and the reversal cancel out, so the balance cache
	// stays put while both movements remain on the books.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO ledger_entries (id, account_id, amount, kind, reference_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT DO NOTHING
	`, uuid.NewString(), accountID, -amount, models.KindDebitReversal, id, models.EntryStatusSettled)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE withdrawal_requests SET status = 'reversed', reversed_at = now() WHERE id = $1
	`, id); err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

func checkTransition(ctx context.Context, db *sql.DB, res sql.Result, id, want string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	var status string
	err = db.QueryRowContext(ctx, `
		SELECT status FROM withdrawal_requests WHERE id = $1
	`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrWithdrawalNotFound
	}
	if err != nil {
		return err
	}
	if status == want {
		return nil
	}
	return apperrors.ErrWithdrawalNotDebitable
}

func (r *withdrawalRepo) queryWithdrawals(ctx context.Context, query string, args ...any) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var withdrawals []models.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWithdrawal(row rowScanner) (models.Withdrawal, error) {
	var w models.Withdrawal
	err := row.Scan(&w.ID, &w.AccountID, &w.Amount, &w.Destination, &w.Status,
		&w.ProviderRef, &w.Attempts, &w.FailureReason, &w.RequestedAt,
		&w.DebitedAt, &w.DispatchedAt, &w.CompletedAt, &w.FailedAt, &w.ReversedAt)
	return w, err
}
