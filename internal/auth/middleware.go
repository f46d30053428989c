package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.claimsFromHeader(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		setUserContext(c, claims)
		c.Next()
	}
}

// OptionalAuth validates JWT tokens if present but doesn't require them.
// Anonymous builds stay reachable through routes using this variant.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := m.claimsFromHeader(c); ok {
			setUserContext(c, claims)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) claimsFromHeader(c *gin.Context) (*AuthClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, false
	}
	claims, err := m.service.ValidateJWT(tokenString)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setUserContext(c *gin.Context, claims *AuthClaims) {
	c.Set("user_id", claims.UserID)
	c.Set("username", claims.Name)
	c.Set("email", claims.Email)
	c.Set("auth_claims", claims)
}

// CurrentUserID extracts the authenticated user's ID from the request
// context, or nil for anonymous requests.
func CurrentUserID(c *gin.Context) *uuid.UUID {
	raw, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	str, ok := raw.(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return nil
	}
	return &id
}
