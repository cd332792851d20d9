// Package middleware provides subscription tier gating for routes.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/packsmart/packsmart-service/internal/domain/dto"
	"github.com/packsmart/packsmart-service/internal/domain/model"
	"github.com/packsmart/packsmart-service/internal/i18n"
)

// RequireTier returns a middleware that rejects users below the required
// subscription tier. It must be used after JWTAuth.
func RequireTier(required model.Tier) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		claimsInterface, exists := c.Get("user_claims")
		if !exists {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyUnauthorized, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		claims, ok := claimsInterface.(*dto.Claims)
		if !ok {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyUnauthorized, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		if !claims.Tier.AtLeast(required) {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyTierRequired, locale)
			errorResp := dto.NewError(dto.ErrCodeTierRequired, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusForbidden, errorResp)
			return
		}

		c.Next()
	}
}

// GetUserTier returns the authenticated user's tier, defaulting to free.
func GetUserTier(c *gin.Context) model.Tier {
	if tier, exists := c.Get("user_tier"); exists {
		if t, ok := tier.(model.Tier); ok {
			return t
		}
	}
	return model.TierFree
}
