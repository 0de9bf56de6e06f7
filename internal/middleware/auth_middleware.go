package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ninjaCoderr/social-app-backend/internal/repository"
	"github.com/ninjaCoderr/social-app-backend/internal/services"
	"github.com/ninjaCoderr/social-app-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and resolves the caller's handle
// from the account id the token was minted for. Handlers downstream read the
// handle from the request context and never touch the token themselves.
func AuthMiddleware(authService *services.AuthService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		accountID, err := authService.ParseToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		u, err := userRepo.GetByAccountID(c.Request.Context(), accountID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := services.WithCallerContext(c.Request.Context(), u.Handle)
		ctx = context.WithValue(ctx, logger.HandleKey, u.Handle)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
