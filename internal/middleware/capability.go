package middleware

import (
	"net/http"

	"jobportal/internal/policy"

	"github.com/gin-gonic/gin"
)

// RequireCapability must run after AuthMiddleware.
func RequireCapability(p *policy.Policy, capability policy.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}
		if !p.Can(user, capability) {
			abortWithError(c, http.StatusForbidden, "Not authorized. Admin access required")
			return
		}
		c.Next()
	}
}
