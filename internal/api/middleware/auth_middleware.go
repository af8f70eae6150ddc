package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sharath12IND/ParkEase/internal/service"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"
	UserIDKey               = "userID"
	UserTypeKey             = "userType"
	UsernameKey             = "username"
)

type AuthMiddleware struct {
	authService *service.AuthService
}

func NewAuthMiddleware(authService *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate validates the bearer token and stores the caller's identity in
// the gin context. Requests without a valid token get 401.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeaderKey)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 || !strings.EqualFold(fields[0], AuthorizationTypeBearer) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization header"})
			return
		}

		claims, err := m.authService.ValidateToken(fields[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token is invalid or expired"})
			return
		}

		sub, okSub := claims["sub"].(string)
		userType, okType := claims["user_type"].(string)
		username, okName := claims["username"].(string)
		if !okSub || !okType || !okName {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "malformed token claims"})
			return
		}
		userID, err := strconv.Atoi(sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "malformed token claims"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UserTypeKey, userType)
		c.Set(UsernameKey, username)
		c.Next()
	}
}

// RequireUserType rejects authenticated callers whose user type is not in the
// allowed set. Must run after Authenticate.
func (m *AuthMiddleware) RequireUserType(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userTypeVal, exists := c.Get(UserTypeKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "access denied"})
			return
		}
		userType, ok := userTypeVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "access denied"})
			return
		}

		for _, want := range allowed {
			if userType == want {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "access denied"})
	}
}

// CallerID returns the authenticated user's ID from the gin context.
func CallerID(c *gin.Context) int {
	id, _ := c.Get(UserIDKey)
	userID, _ := id.(int)
	return userID
}
