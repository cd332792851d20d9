package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packsmart/packsmart-service/internal/domain/dto"
	"github.com/packsmart/packsmart-service/internal/domain/model"
)

func setClaims(tier model.Tier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := &dto.Claims{
			UserID: primitive.NewObjectID(),
			Email:  "test@example.com",
			Tier:   tier,
		}
		c.Set("user_claims", claims)
		c.Set("user_tier", claims.Tier)
		c.Next()
	}
}

func TestRequireTier(t *testing.T) {
	tests := []struct {
		name       string
		userTier   model.Tier
		required   model.Tier
		wantStatus int
	}{
		{name: "exact tier passes", userTier: model.TierSilver, required: model.TierSilver, wantStatus: http.StatusOK},
		{name: "higher tier passes", userTier: model.TierExclusive, required: model.TierGold, wantStatus: http.StatusOK},
		{name: "lower tier is rejected", userTier: model.TierFree, required: model.TierSilver, wantStatus: http.StatusForbidden},
		{name: "one-trip below gold", userTier: model.TierOneTrip, required: model.TierGold, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(setClaims(tt.userTier))
			router.GET("/premium", RequireTier(tt.required), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/premium", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), dto.ErrCodeTierRequired)
			}
		})
	}

	t.Run("rejects unauthenticated requests", func(t *testing.T) {
		router := gin.New()
		router.GET("/premium", RequireTier(model.TierSilver), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/premium", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetUserTier(t *testing.T) {
	t.Run("returns tier from context", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("user_tier", model.TierGold)

		assert.Equal(t, model.TierGold, GetUserTier(c))
	})

	t.Run("defaults to free", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		assert.Equal(t, model.TierFree, GetUserTier(c))
	})
}
