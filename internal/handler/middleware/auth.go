package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"curtaincall/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxUserIDKey = "user_id"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		userID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

// AdminAuthMiddleware guards back-office routes. Admin tokens are signed
// with their own secret, so a member token never passes here.
type AdminAuthMiddleware struct {
	tokenValidator usecase.AdminTokenValidator
}

const ctxAdminIDKey = "admin_id"

func NewAdminAuthMiddleware(tokenValidator usecase.AdminTokenValidator) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Admin token required",
			})
			c.Abort()
			return
		}

		adminID, err := m.tokenValidator.ValidateAdminToken(token)
		if err != nil {
			slog.Warn("Admin token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminIDKey, adminID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetUserID reads the authenticated member id set by RequireAuth.
func GetUserID(c *gin.Context) (string, bool) {
	raw, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}
	userID, ok := raw.(string)
	return userID, ok && userID != ""
}

// GetAdminID reads the admin id set by RequireAdmin.
func GetAdminID(c *gin.Context) (string, bool) {
	raw, exists := c.Get(ctxAdminIDKey)
	if !exists {
		return "", false
	}
	adminID, ok := raw.(string)
	return adminID, ok && adminID != ""
}
