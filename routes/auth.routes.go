package routes

import (
	"time"

	"jobportal/internal/controllers"
	"jobportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig throttles the credential endpoints per client IP.
type RateLimitConfig struct {
	Limiter middleware.Limiter
	Limit   int
	Window  time.Duration
}

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController, auth gin.HandlerFunc, rl RateLimitConfig) {
	authRoutesPublic := router.Group("/api/auth")
	{
		authRoutesPublic.POST("/register", middleware.RateLimit(rl.Limiter, "register", rl.Limit, rl.Window), authController.Register)
		authRoutesPublic.POST("/login", middleware.RateLimit(rl.Limiter, "login", rl.Limit, rl.Window), authController.Login)
	}
	authRoutesPrivate := router.Group("/api/auth")
	authRoutesPrivate.Use(auth)
	{
		authRoutesPrivate.GET("/me", authController.Me)
		authRoutesPrivate.GET("/verify", authController.Verify)
	}
}
