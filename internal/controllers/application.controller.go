package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"jobportal/internal/middleware"
	"jobportal/internal/models"
	"jobportal/internal/services"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for the text fields around the CV in the request body.
const multipartOverhead = 1 << 20

type ApplicationController struct {
	apps       *services.ApplicationService
	maxCVBytes int64
}

func NewApplicationController(apps *services.ApplicationService, maxCVBytes int64) *ApplicationController {
	return &ApplicationController{apps: apps, maxCVBytes: maxCVBytes}
}

func (ac *ApplicationController) currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authorized to access this route"})
	}
	return user, ok
}

// SubmitApplication godoc
// @Summary Apply for a job
// @Description Multipart form with the applicant's details and a CV (PDF, DOC or DOCX, at most 5MB).
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param jobId formData string true "Job ID"
// @Param nameWithInitials formData string true "Name with initials"
// @Param fullName formData string true "Full name"
// @Param gender formData string true "male, female or other"
// @Param dateOfBirth formData string true "YYYY-MM-DD"
// @Param email formData string true "Contact email"
// @Param contactNumber formData string true "Contact number"
// @Param field formData string true "Field"
// @Param cv formData file true "CV file"
// @Success 201 {object} map[string]interface{} "Created application"
// @Failure 400 {object} map[string]interface{} "Invalid file, form or duplicate application"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /applications [post]
func (ac *ApplicationController) SubmitApplication(c *gin.Context) {
	user, ok := ac.currentUser(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ac.maxCVBytes+multipartOverhead)

	var in services.SubmitApplicationInput
	if err := c.ShouldBind(&in); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			badRequest(c, fmt.Sprintf("File too large. Maximum size is %dMB", ac.maxCVBytes/(1<<20)))
			return
		}
		badRequest(c, "Invalid request data")
		return
	}

	cv, err := c.FormFile("cv")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			badRequest(c, "Invalid request data")
			return
		}
		cv = nil
	}

	app, err := ac.apps.Submit(c.Request.Context(), user.ID, in, cv)
	if err != nil {
		respondError(c, err, "submitting application")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"application": app,
	})
}

// GetMyApplications godoc
// @Summary List the caller's applications
// @Description Hidden applications are excluded.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "count and applications"
// @Router /applications/me [get]
func (ac *ApplicationController) GetMyApplications(c *gin.Context) {
	user, ok := ac.currentUser(c)
	if !ok {
		return
	}

	apps, err := ac.apps.ListMine(user.ID)
	if err != nil {
		respondError(c, err, "fetching applications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"count":        len(apps),
		"applications": apps,
	})
}

// GetAllApplications godoc
// @Summary List every application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "count and applications"
// @Failure 403 {object} map[string]interface{} "Admin access required"
// @Router /applications/all [get]
func (ac *ApplicationController) GetAllApplications(c *gin.Context) {
	apps, err := ac.apps.ListAll()
	if err != nil {
		respondError(c, err, "fetching applications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"count":        len(apps),
		"applications": apps,
	})
}

// GetShortlistedApplications godoc
// @Summary List shortlisted applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "count and applications"
// @Failure 403 {object} map[string]interface{} "Admin access required"
// @Router /applications/shortlisted [get]
func (ac *ApplicationController) GetShortlistedApplications(c *gin.Context) {
	apps, err := ac.apps.ListShortlisted()
	if err != nil {
		respondError(c, err, "fetching shortlisted applications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"count":        len(apps),
		"applications": apps,
	})
}

// UpdateApplicationStatus godoc
// @Summary Change an application's status
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param payload body statusRequest true "Pending, Reviewing, Shortlisted, Rejected or Accepted"
// @Success 200 {object} map[string]interface{} "Updated application"
// @Failure 400 {object} map[string]interface{} "Invalid status value"
// @Failure 404 {object} map[string]interface{} "Application not found"
// @Router /applications/{id}/status [put]
func (ac *ApplicationController) UpdateApplicationStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "application")
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid status value")
		return
	}

	app, err := ac.apps.UpdateStatus(c.Request.Context(), id, models.ApplicationStatus(req.Status))
	if err != nil {
		respondError(c, err, "updating application status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"application": app,
	})
}

// ScheduleInterview godoc
// @Summary Set interview details
// @Description The applicant is e-mailed when SMTP is configured.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param payload body services.InterviewInput true "Interview details"
// @Success 200 {object} map[string]interface{} "Updated application"
// @Failure 400 {object} map[string]interface{} "Missing date, time or location"
// @Failure 404 {object} map[string]interface{} "Application not found"
// @Router /applications/{id}/interview [put]
func (ac *ApplicationController) ScheduleInterview(c *gin.Context) {
	id, ok := parseID(c, "id", "application")
	if !ok {
		return
	}

	var in services.InterviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Please provide date, time, and location")
		return
	}

	app, err := ac.apps.ScheduleInterview(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, "updating interview details")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"application": app,
	})
}

// DeleteApplication godoc
// @Summary Delete an application and its CV
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} map[string]interface{} "Application deleted"
// @Failure 404 {object} map[string]interface{} "Application not found"
// @Router /applications/{id} [delete]
func (ac *ApplicationController) DeleteApplication(c *gin.Context) {
	id, ok := parseID(c, "id", "application")
	if !ok {
		return
	}

	if err := ac.apps.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "deleting application")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application successfully deleted",
	})
}

// DownloadCV godoc
// @Summary Download an applicant's CV
// @Tags applications
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {file} file "CV file"
// @Failure 404 {object} map[string]interface{} "CV not found"
// @Router /applications/{id}/cv [get]
func (ac *ApplicationController) DownloadCV(c *gin.Context) {
	id, ok := parseID(c, "id", "application")
	if !ok {
		return
	}

	path, err := ac.apps.CVPath(id)
	if err != nil {
		respondError(c, err, "downloading CV")
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}

// HideApplication godoc
// @Summary Hide an application from the caller's list
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} map[string]interface{} "Application hidden"
// @Failure 403 {object} map[string]interface{} "Not the owner"
// @Failure 404 {object} map[string]interface{} "Application not found"
// @Router /applications/{id}/hide [put]
func (ac *ApplicationController) HideApplication(c *gin.Context) {
	id, ok := parseID(c, "id", "application")
	if !ok {
		return
	}

	user, ok := ac.currentUser(c)
	if !ok {
		return
	}

	if _, err := ac.apps.Hide(id, user.ID); err != nil {
		respondError(c, err, "hiding application")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application hidden successfully",
	})
}
