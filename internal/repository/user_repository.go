package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/logger"
	"github.com/snapchallan/rewards/internal/models"
	"go.uber.org/zap"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByPhone(ctx context.Context, phoneNumber string) (*models.User, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

// CreateUser opens the wallet account together with the user row, so every
// citizen has an account from their first report onward.
func (r *userRepo) CreateUser(ctx context.Context, user *models.User) error {
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

	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (phone_number, password_hash, role) VALUES ($1, $2, $3)
		RETURNING id
	`, user.PhoneNumber, user.Password, user.Role).Scan(&user.ID)
	if isUniqueViolation(err) {
		err = apperrors.ErrUserAlreadyExists
		return err
	}
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO accounts (user_id) VALUES ($1)
	`, user.ID); err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

func (r *userRepo) GetUserByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, phone_number, password_hash, role FROM users WHERE phone_number = $1
	`, phoneNumber).Scan(&user.ID, &user.PhoneNumber, &user.Password, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
