package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/mocks/repository_mocks"
	"github.com/snapchallan/rewards/internal/models"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		mockSetup func(repo *repository_mocks.MockUserRepository)
		wantErr   error
	}{
		{
			name: "new citizen",
			mockSetup: func(repo *repository_mocks.MockUserRepository) {
				repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, user *models.User) error {
						assert.Equal(t, "+919876543210", user.PhoneNumber)
						assert.Equal(t, models.RoleCitizen, user.Role)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password")))
						return nil
					})
			},
		},
		{
			name: "phone already registered",
			mockSetup: func(repo *repository_mocks.MockUserRepository) {
				repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(apperrors.ErrUserAlreadyExists)
			},
			wantErr: apperrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository_mocks.NewMockUserRepository(ctrl)
			tt.mockSetup(repo)

			svc := NewUserService(repo)
			err := svc.Register(ctx, "+919876543210", "password")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	assert.NoError(t, err)
	user := &models.User{ID: 1, PhoneNumber: "+919876543210", Password: string(hashed), Role: models.RoleCitizen}

	tests := []struct {
		name      string
		password  string
		mockSetup func(repo *repository_mocks.MockUserRepository)
		wantErr   error
	}{
		{
			name:     "correct credentials",
			password: "password",
			mockSetup: func(repo *repository_mocks.MockUserRepository) {
				repo.EXPECT().GetUserByPhone(ctx, "+919876543210").Return(user, nil)
			},
		},
		{
			name:     "wrong password",
			password: "wrong",
			mockSetup: func(repo *repository_mocks.MockUserRepository) {
				repo.EXPECT().GetUserByPhone(ctx, "+919876543210").Return(user, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown phone",
			password: "password",
			mockSetup: func(repo *repository_mocks.MockUserRepository) {
				repo.EXPECT().GetUserByPhone(ctx, "+919876543210").
					Return(nil, apperrors.ErrUserNotFound)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository_mocks.NewMockUserRepository(ctrl)
			tt.mockSetup(repo)

			svc := NewUserService(repo)
			err := svc.Authenticate(ctx, "+919876543210", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
