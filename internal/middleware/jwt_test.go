package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packsmart/packsmart-service/config"
	"github.com/packsmart/packsmart-service/internal/domain/model"
	"github.com/packsmart/packsmart-service/internal/mocks"
	"github.com/packsmart/packsmart-service/internal/service"
)

func newTestAuthService(tokenRepo *mocks.MockTokenRepositoryInterface) service.AuthService {
	cfg := config.AuthConfig{
		JWTSecretKey:     "test-secret",
		JWTRefreshSecret: "test-refresh-secret",
		AccessTokenTTL:   time.Minute,
		RefreshTokenTTL:  time.Hour,
	}
	return service.NewAuthService(new(mocks.MockUserRepositoryInterface), tokenRepo, cfg)
}

func TestJWTAuth(t *testing.T) {
	t.Run("accepts a valid bearer token", func(t *testing.T) {
		tokenRepo := new(mocks.MockTokenRepositoryInterface)
		tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)
		tokenRepo.On("IsBlacklisted", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

		authService := newTestAuthService(tokenRepo)

		cfg := config.AuthConfig{
			JWTSecretKey:     "test-secret",
			JWTRefreshSecret: "test-refresh-secret",
			AccessTokenTTL:   time.Minute,
			RefreshTokenTTL:  time.Hour,
		}
		tokenService := service.NewTokenService(tokenRepo, service.NewTokenConfigFromAuthConfig(cfg))
		user := &model.User{ID: primitive.NewObjectID(), Email: "test@example.com", Tier: model.TierSilver}
		tokens, err := tokenService.GenerateTokenPair(context.Background(), user)
		require.NoError(t, err)

		router := gin.New()
		router.Use(RequestID(), JWTAuth(authService))
		router.GET("/me", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"tier": GetUserTier(c)})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "silver")
	})

	t.Run("rejects missing authorization header", func(t *testing.T) {
		authService := newTestAuthService(new(mocks.MockTokenRepositoryInterface))

		router := gin.New()
		router.Use(RequestID(), JWTAuth(authService))
		router.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects non-bearer scheme", func(t *testing.T) {
		authService := newTestAuthService(new(mocks.MockTokenRepositoryInterface))

		router := gin.New()
		router.Use(RequestID(), JWTAuth(authService))
		router.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		tokenRepo := new(mocks.MockTokenRepositoryInterface)
		tokenRepo.On("IsBlacklisted", mock.Anything, "garbage").Return(false, nil)

		authService := newTestAuthService(tokenRepo)

		router := gin.New()
		router.Use(RequestID(), JWTAuth(authService))
		router.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
