package routes

import (
	"jobportal/internal/controllers"
	"jobportal/internal/policy"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	AuthController        *controllers.AuthController
	AdminController       *controllers.AdminController
	JobController         *controllers.JobController
	ApplicationController *controllers.ApplicationController

	Auth      gin.HandlerFunc
	Policy    *policy.Policy
	RateLimit RateLimitConfig
}

// Register mounts every /api route group on router.
func Register(router *gin.Engine, deps Dependencies) {
	p := deps.Policy
	if p == nil {
		p = policy.Default()
	}

	RegisterAuthRoutes(router, deps.AuthController, deps.Auth, deps.RateLimit)
	RegisterAdminRoutes(router, deps.AdminController, deps.Auth, p)
	RegisterJobRoutes(router, deps.JobController, deps.Auth, p)
	RegisterApplicationRoutes(router, deps.ApplicationController, deps.Auth, p)
	RegisterSwaggerRoutes(router)
}
