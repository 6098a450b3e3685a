package service

import (
	"context"
	"errors"

	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/models"
	"github.com/snapchallan/rewards/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, phoneNumber, password string) error
	Authenticate(ctx context.Context, phoneNumber, password string) error
	GetUserByPhone(ctx context.Context, phoneNumber string) (*models.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, phoneNumber, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		PhoneNumber: phoneNumber,
		Password:    string(hashedPassword),
		Role:        models.RoleCitizen,
	}

	err = s.repo.CreateUser(ctx, user)
	if errors.Is(err, apperrors.ErrUserAlreadyExists) {
		return err
	}
	return err
}

func (s *userService) Authenticate(ctx context.Context, phoneNumber, password string) error {
	user, err := s.repo.GetUserByPhone(ctx, phoneNumber)
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}

	return nil
}

func (s *userService) GetUserByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	return s.repo.GetUserByPhone(ctx, phoneNumber)
}
