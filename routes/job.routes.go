package routes

import (
	"jobportal/internal/controllers"
	"jobportal/internal/middleware"
	"jobportal/internal/policy"

	"github.com/gin-gonic/gin"
)

func RegisterJobRoutes(router *gin.Engine, jobController *controllers.JobController, auth gin.HandlerFunc, p *policy.Policy) {
	manage := middleware.RequireCapability(p, policy.JobsManage)

	jobRoutes := router.Group("/api/jobs")
	{
		// Static paths are matched before /:id.
		jobRoutes.GET("/public", jobController.GetPublicJobs)
		jobRoutes.GET("/latest", jobController.GetLatestJobs)
		jobRoutes.GET("/:id", jobController.GetJob)

		jobRoutes.GET("", auth, middleware.RequireCapability(p, policy.JobsRead), jobController.GetJobs)
		jobRoutes.POST("", auth, manage, jobController.CreateJob)
		jobRoutes.PUT("/:id/status", auth, manage, jobController.UpdateJobStatus)
		jobRoutes.DELETE("/:id", auth, manage, jobController.DeleteJob)
	}
}
