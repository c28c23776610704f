package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/dto"
)

const (
	// UserIDKey is the context key under which the authenticated user ID is stored.
	UserIDKey = "user_id"
	// UserEmailKey is the context key under which the authenticated user email is stored.
	UserEmailKey = "user_email"
	// UserNameKey is the context key under which the authenticated user name is stored.
	UserNameKey = "user_name"
)

// AuthMiddleware verifies bearer tokens and injects the user identity into
// the request context.
type AuthMiddleware struct {
	verifier adapter.TokenVerifier
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(verifier adapter.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate returns a gin handler that rejects requests without a valid token.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: domainerror.ErrMissingToken.Error(),
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: domainerror.ErrInvalidToken.Error(),
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		claims, err := m.verifier.VerifyAccessToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: domainerror.ErrInvalidToken.Error(),
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserNameKey, claims.Name)
		c.Next()
	}
}

// GetUserIDFromContext extracts the authenticated user ID from the gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext extracts the authenticated user email from the gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}

// GetUserNameFromContext extracts the authenticated user name from the gin context.
func GetUserNameFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(UserNameKey)
	if !exists {
		return "", false
	}
	name, ok := value.(string)
	return name, ok
}
