package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"jobportal/internal/models"
	"jobportal/internal/repository"
	"jobportal/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUser   = "user"
	ContextUserID = "user_id"
	ContextRole   = "role"
)

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// AuthMiddleware verifies the bearer token and attaches the current user to the context.
func AuthMiddleware(users repository.UserRepository, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			abortWithError(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}
		if tokenString == "undefined" || tokenString == "null" || !strings.Contains(tokenString, ".") {
			abortWithError(c, http.StatusUnauthorized, "Invalid token format")
			return
		}

		claims, err := utils.ParseToken(jwtSecret, tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"error":   "Token expired",
					"code":    "TOKEN_EXPIRED",
				})
				return
			}
			abortWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				abortWithError(c, http.StatusUnauthorized, "User not found")
				return
			}
			log.Printf("Failed to load user %s: %v", userID, err)
			abortWithError(c, http.StatusInternalServerError, "Server error during authentication")
			return
		}

		user.Password = ""
		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)
		c.Set(ContextRole, user.Role)
		c.Next()
	}
}

// CurrentUser returns the user attached by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}
