package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/logger"
	"github.com/snapchallan/rewards/internal/models"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

type LedgerRepository interface {
	CreditReward(ctx context.Context, draft models.LedgerEntryDraft) (models.LedgerEntry, error)
	GetEntryByReference(ctx context.Context, accountID int64, referenceID, kind string) (models.LedgerEntry, error)
	EntriesFor(ctx context.Context, accountID int64) ([]models.LedgerEntry, error)
	RecentEntries(ctx context.Context, accountID int64, limit int) ([]models.LedgerEntry, error)
	GetBalance(ctx context.Context, accountID int64) (models.Wallet, error)
	VerifyBalance(ctx context.Context, accountID int64) error
}

type ledgerRepo struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) LedgerRepository {
	return &ledgerRepo{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// CreditReward appends a settled reward credit, links it to the violation it
// pays for and bumps the balance cache, all in one transaction keyed on the
// account row. A second call with the same reference returns ErrDuplicateEntry.
func (r *ledgerRepo) CreditReward(ctx context.Context, draft models.LedgerEntryDraft) (models.LedgerEntry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.LedgerEntry{}, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	var frozen bool
	err = tx.QueryRowContext(ctx, `
		SELECT frozen FROM accounts WHERE user_id = $1 FOR UPDATE
	`, draft.AccountID).Scan(&frozen)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrAccountNotFound
		return models.LedgerEntry{}, err
	}
	if err != nil {
		return models.LedgerEntry{}, err
	}

	entry := models.LedgerEntry{
		ID:          uuid.NewString(),
		AccountID:   draft.AccountID,
		Amount:      draft.Amount,
		Kind:        draft.Kind,
		ReferenceID: draft.ReferenceID,
		Status:      models.EntryStatusSettled,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO ledger_entries (id, account_id, amount, kind, reference_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, entry.ID, entry.AccountID, entry.Amount, entry.Kind, entry.ReferenceID, entry.Status).Scan(&entry.CreatedAt)
	if isUniqueViolation(err) {
		err = apperrors.ErrDuplicateEntry
		return models.LedgerEntry{}, err
	}
	if err != nil {
		return models.LedgerEntry{}, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO violation_reward_links (violation_id, entry_id) VALUES ($1, $2)
	`, draft.ReferenceID, entry.ID)
	if isUniqueViolation(err) {
		err = apperrors.ErrDuplicateEntry
		return models.LedgerEntry{}, err
	}
	if err != nil {
		return models.LedgerEntry{}, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE accounts SET balance = balance + $1 WHERE user_id = $2
	`, entry.Amount, entry.AccountID)
	if err != nil {
		return models.LedgerEntry{}, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE violations SET status = $1 WHERE id = $2
	`, models.ViolationPaid, draft.ReferenceID)
	if err != nil {
		return models.LedgerEntry{}, err
	}

	err = tx.Commit()
	if err != nil {
		return models.LedgerEntry{}, err
	}
	return entry, nil
}

func (r *ledgerRepo) GetEntryByReference(ctx context.Context, accountID int64, referenceID, kind string) (models.LedgerEntry, error) {
	var entry models.LedgerEntry
	err := r.db.QueryRowContext(ctx, `
		SELECT id, account_id, amount, kind, reference_id, status, created_at
		FROM ledger_entries
		WHERE account_id = $1 AND reference_id = $2 AND kind = $3 AND status <> 'failed'
	`, accountID, referenceID, kind).Scan(
		&entry.ID, &entry.AccountID, &entry.Amount, &entry.Kind,
		&entry.ReferenceID, &entry.Status, &entry.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LedgerEntry{}, apperrors.ErrEntryNotFound
	}
	if err != nil {
		return models.LedgerEntry{}, err
	}
	return entry, nil
}

func (r *ledgerRepo) EntriesFor(ctx context.Context, accountID int64) ([]models.LedgerEntry, error) {
	return r.queryEntries(ctx, `
		SELECT id, account_id, amount, kind, reference_id, status, created_at
		FROM ledger_entries WHERE account_id = $1 ORDER BY created_at ASC, id ASC
	`, accountID)
}

func (r *ledgerRepo) RecentEntries(ctx context.Context, accountID int64, limit int) ([]models.LedgerEntry, error) {
	return r.queryEntries(ctx, `
		SELECT id, account_id, amount, kind, reference_id, status, created_at
		FROM ledger_entries WHERE account_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2
	`, accountID, limit)
}

func (r *ledgerRepo) queryEntries(ctx context.Context, query string, args ...any) ([]models.LedgerEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query ledger entries", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var entries []models.LedgerEntry
	for rows.Next() {
		var entry models.LedgerEntry
		if err := rows.Scan(&entry.ID, &entry.AccountID, &entry.Amount, &entry.Kind,
			&entry.ReferenceID, &entry.Status, &entry.CreatedAt); err != nil {
			logger.Log.Error("failed to scan ledger entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// GetBalance reports the settled cache and the spendable amount. Pending
// debits are withdrawal holds that have not reached a payout outcome yet.
func (r *ledgerRepo) GetBalance(ctx context.Context, accountID int64) (models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.QueryRowContext(ctx, `
		SELECT a.balance,
		       a.balance + COALESCE((
		           SELECT SUM(e.amount) FROM ledger_entries e
		           WHERE e.account_id = a.user_id AND e.status = 'pending' AND e.amount < 0
		       ), 0)
		FROM accounts a WHERE a.user_id = $1
	`, accountID).Scan(&wallet.Settled, &wallet.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Wallet{}, apperrors.ErrAccountNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get balance", zap.Error(err))
		return models.Wallet{}, err
	}
	return wallet, nil
}

// VerifyBalance recomputes the settled sum from the entry history and checks
// it against the cache. A divergence freezes the account so no further debit
// can run until someone reconciles by hand; it is never auto-corrected.
func (r *ledgerRepo) VerifyBalance(ctx context.Context, accountID int64) error {
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

	var cached int64
	err = tx.QueryRowContext(ctx, `
		SELECT balance FROM accounts WHERE user_id = $1 FOR UPDATE
	`, accountID).Scan(&cached)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrAccountNotFound
		return err
	}
	if err != nil {
		return err
	}

	var recomputed int64
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM ledger_entries
		WHERE account_id = $1 AND status = 'settled'
	`, accountID).Scan(&recomputed)
	if err != nil {
		return err
	}

	if recomputed != cached {
		if _, err = tx.ExecContext(ctx, `
			UPDATE accounts SET frozen = TRUE WHERE user_id = $1
		`, accountID); err != nil {
			return err
		}
		if err = tx.Commit(); err != nil {
			return err
		}
		logger.Log.Error("ledger corruption detected, account frozen",
			zap.Int64("account", accountID),
			zap.Int64("cached", cached),
			zap.Int64("recomputed", recomputed))
		return apperrors.ErrLedgerCorrupted
	}

	return tx.Commit()
}
