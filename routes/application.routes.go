package routes

import (
	"jobportal/internal/controllers"
	"jobportal/internal/middleware"
	"jobportal/internal/policy"

	"github.com/gin-gonic/gin"
)

func RegisterApplicationRoutes(router *gin.Engine, applicationController *controllers.ApplicationController, auth gin.HandlerFunc, p *policy.Policy) {
	applicationRoutes := router.Group("/api/applications")
	applicationRoutes.Use(auth)
	{
		submit := middleware.RequireCapability(p, policy.ApplicationsSubmit)
		applicationRoutes.POST("", submit, applicationController.SubmitApplication)
		applicationRoutes.GET("/me", applicationController.GetMyApplications)
		applicationRoutes.PUT("/:id/hide", applicationController.HideApplication)
	}

	reviewRoutes := router.Group("/api/applications")
	reviewRoutes.Use(auth, middleware.RequireCapability(p, policy.ApplicationsReview))
	{
		reviewRoutes.GET("/all", applicationController.GetAllApplications)
		reviewRoutes.GET("/shortlisted", applicationController.GetShortlistedApplications)
		reviewRoutes.PUT("/:id/status", applicationController.UpdateApplicationStatus)
		reviewRoutes.PUT("/:id/interview", applicationController.ScheduleInterview)
		reviewRoutes.DELETE("/:id", applicationController.DeleteApplication)
		reviewRoutes.GET("/:id/cv", applicationController.DownloadCV)
	}
}
