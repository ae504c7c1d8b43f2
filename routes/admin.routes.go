package routes

import (
	"jobportal/internal/controllers"
	"jobportal/internal/middleware"
	"jobportal/internal/policy"

	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(router *gin.Engine, adminController *controllers.AdminController, auth gin.HandlerFunc, p *policy.Policy) {
	adminRoutes := router.Group("/api/admin")
	adminRoutes.Use(auth, middleware.RequireCapability(p, policy.UsersPromote))
	{
		adminRoutes.PUT("/promote/:userId", adminController.Promote)
	}
}
