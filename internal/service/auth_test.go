package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/packsmart/packsmart-service/config"
	"github.com/packsmart/packsmart-service/internal/domain/model"
	"github.com/packsmart/packsmart-service/internal/mocks"
	"github.com/packsmart/packsmart-service/internal/service"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecretKey:     "test-secret-key",
		JWTRefreshSecret: "test-refresh-secret-key",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*testing.T, *mocks.MockUserRepositoryInterface)
		expectTokens  bool
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(t *testing.T, mockRepo *mocks.MockUserRepositoryInterface) {
				user := &model.User{
					ID:       primitive.NewObjectID(),
					Email:    "test@example.com",
					Password: hashPassword(t, "password123"),
					Tier:     model.TierFree,
					Active:   true,
				}
				mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(user, nil)
			},
			expectTokens: true,
		},
		{
			name:     "user not found",
			email:    "notfound@example.com",
			password: "password123",
			setupMocks: func(t *testing.T, mockRepo *mocks.MockUserRepositoryInterface) {
				mockRepo.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, nil)
			},
			expectedError: service.ErrInvalidCredentials,
		},
		{
			name:     "inactive user",
			email:    "inactive@example.com",
			password: "password123",
			setupMocks: func(t *testing.T, mockRepo *mocks.MockUserRepositoryInterface) {
				user := &model.User{
					ID:       primitive.NewObjectID(),
					Email:    "inactive@example.com",
					Password: hashPassword(t, "password123"),
					Active:   false,
				}
				mockRepo.On("FindByEmail", mock.Anything, "inactive@example.com").Return(user, nil)
			},
			expectedError: service.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrongpassword",
			setupMocks: func(t *testing.T, mockRepo *mocks.MockUserRepositoryInterface) {
				user := &model.User{
					ID:       primitive.NewObjectID(),
					Email:    "test@example.com",
					Password: hashPassword(t, "password123"),
					Active:   true,
				}
				mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(user, nil)
			},
			expectedError: service.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mocks.MockUserRepositoryInterface)
			mockTokenRepo := new(mocks.MockTokenRepositoryInterface)

			tt.setupMocks(t, mockUserRepo)

			if tt.expectTokens {
				mockTokenRepo.On("DeleteByUserID", mock.Anything, mock.AnythingOfType("primitive.ObjectID"), "refresh").Return(nil)
				mockTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)
			}

			authService := service.NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

			tokens, user, err := authService.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, tokens)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, tokens)
			assert.NotEmpty(t, tokens.AccessToken)
			assert.NotEmpty(t, tokens.RefreshToken)
			assert.Equal(t, tt.email, user.Email)
			mockUserRepo.AssertExpectations(t)
			mockTokenRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("registers new user on the free tier", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		mockTokenRepo := new(mocks.MockTokenRepositoryInterface)

		mockUserRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		mockUserRepo.On("FindByUsername", mock.Anything, "newuser").Return(nil, nil)
		mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Run(func(args mock.Arguments) {
			user := args.Get(1).(*model.User)
			user.ID = primitive.NewObjectID()
		})
		mockTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)

		authService := service.NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

		tokens, user, err := authService.Register(context.Background(), "new@example.com", "newuser", "password123", "New User")

		require.NoError(t, err)
		require.NotNil(t, tokens)
		assert.Equal(t, model.TierFree, user.Tier)
		assert.True(t, user.Active)
		assert.NotEqual(t, "password123", user.Password)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		mockTokenRepo := new(mocks.MockTokenRepositoryInterface)

		existing := &model.User{ID: primitive.NewObjectID(), Email: "existing@example.com"}
		mockUserRepo.On("FindByEmail", mock.Anything, "existing@example.com").Return(existing, nil)

		authService := service.NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

		_, _, err := authService.Register(context.Background(), "existing@example.com", "newuser", "password123", "New User")

		assert.ErrorIs(t, err, service.ErrUserExists)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		mockTokenRepo := new(mocks.MockTokenRepositoryInterface)

		existing := &model.User{ID: primitive.NewObjectID(), Username: "existinguser"}
		mockUserRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		mockUserRepo.On("FindByUsername", mock.Anything, "existinguser").Return(existing, nil)

		authService := service.NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

		_, _, err := authService.Register(context.Background(), "new@example.com", "existinguser", "password123", "New User")

		assert.ErrorIs(t, err, service.ErrUserExists)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	t.Run("validates freshly issued access token", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		mockTokenRepo := new(mocks.MockTokenRepositoryInterface)

		user := &model.User{
			ID:     primitive.NewObjectID(),
			Email:  "test@example.com",
			Name:   "Test User",
			Tier:   model.TierGold,
			Active: true,
		}
		mockTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)
		mockTokenRepo.On("IsBlacklisted", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

		authService := service.NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())
		tokenService := service.NewTokenService(mockTokenRepo, service.NewTokenConfigFromAuthConfig(testAuthConfig()))

		tokens, err := tokenService.GenerateTokenPair(context.Background(), user)
		require.NoError(t, err)

		claims, err := authService.ValidateToken(context.Background(), tokens.AccessToken)

		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, model.TierGold, claims.Tier)
	})

	t.Run("rejects blacklisted token", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		mockTokenRepo := new(mocks.MockTokenRepositoryInterface)

		mockTokenRepo.On("IsBlacklisted", mock.Anything, "some-token").Return(true, nil)

		authService := service.NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

		_, err := authService.ValidateToken(context.Background(), "some-token")

		assert.ErrorIs(t, err, service.ErrTokenBlacklisted)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		mockTokenRepo := new(mocks.MockTokenRepositoryInterface)

		mockTokenRepo.On("IsBlacklisted", mock.Anything, "not-a-jwt").Return(false, nil)

		authService := service.NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

		_, err := authService.ValidateToken(context.Background(), "not-a-jwt")

		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})
}

func TestAuthService_UpgradeTier(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("updates tier and invalidates refresh tokens", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		mockTokenRepo := new(mocks.MockTokenRepositoryInterface)

		mockUserRepo.On("UpdateTier", mock.Anything, userID, model.TierGold).Return(nil)
		mockTokenRepo.On("DeleteByUserID", mock.Anything, userID, "refresh").Return(nil)
		mockUserRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:   userID,
			Tier: model.TierGold,
		}, nil)

		authService := service.NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

		user, err := authService.UpgradeTier(context.Background(), userID, model.TierGold)

		require.NoError(t, err)
		assert.Equal(t, model.TierGold, user.Tier)
		mockUserRepo.AssertExpectations(t)
		mockTokenRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown tier", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		mockTokenRepo := new(mocks.MockTokenRepositoryInterface)

		authService := service.NewAuthService(mockUserRepo, mockTokenRepo, testAuthConfig())

		_, err := authService.UpgradeTier(context.Background(), userID, model.Tier("platinum"))

		assert.Error(t, err)
		mockUserRepo.AssertNotCalled(t, "UpdateTier", mock.Anything, mock.Anything, mock.Anything)
	})
}
