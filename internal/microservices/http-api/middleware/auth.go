package middleware

import (
	"net/http"
	"strings"

	"dormhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "userID"
	claimsKey = "claims"
)

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// The token is read from the session cookie, or from an
// "Authorization: Bearer <token>" header when no cookie is present.
func AuthMiddleware(authService service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c, cookieName)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		SetCurrentUser(c, claims)
		c.Next()
	}
}

// SetCurrentUser stores the caller identity in the request context
func SetCurrentUser(c *gin.Context, claims *service.Claims) {
	c.Set(claimsKey, claims)
	c.Set(userIDKey, claims.UserID)
}

func extractToken(c *gin.Context, cookieName string) (string, bool) {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie, true
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	// split by space, 0 is Bearer, 1 is token
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// CurrentUserID returns the caller resolved by AuthMiddleware
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// CurrentClaims returns the validated token claims of the caller
func CurrentClaims(c *gin.Context) (*service.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*service.Claims)
	return claims, ok
}
