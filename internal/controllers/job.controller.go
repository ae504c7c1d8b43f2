package controllers

import (
	"net/http"
	"strconv"

	"jobportal/internal/middleware"
	"jobportal/internal/models"
	"jobportal/internal/services"

	"github.com/gin-gonic/gin"
)

type JobController struct {
	jobs *services.JobService
}

func NewJobController(jobs *services.JobService) *JobController {
	return &JobController{jobs: jobs}
}

type statusRequest struct {
	Status string `json:"status"`
}

// CreateJob godoc
// @Summary Create a job posting
// @Description New postings start as Pending and must be accepted before they are public.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param job body services.CreateJobInput true "Job data"
// @Success 201 {object} map[string]interface{} "Created job"
// @Failure 400 {object} map[string]interface{} "Missing field or duplicate job ID"
// @Failure 403 {object} map[string]interface{} "Admin access required"
// @Router /jobs [post]
func (jc *JobController) CreateJob(c *gin.Context) {
	var in services.CreateJobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request data")
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authorized to access this route"})
		return
	}

	job, err := jc.jobs.Create(in, user.ID)
	if err != nil {
		respondError(c, err, "creating job")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"job":     job,
	})
}

// GetJobs godoc
// @Summary List jobs
// @Description Filters combine. status defaults to Accepted; status=all lists every status.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param field query string false "Exact field"
// @Param status query string false "Pending, Accepted, Rejected or all"
// @Param search query string false "Case-insensitive text over type, position, field and description"
// @Success 200 {object} map[string]interface{} "count and jobs"
// @Failure 400 {object} map[string]interface{} "Invalid status value"
// @Router /jobs [get]
func (jc *JobController) GetJobs(c *gin.Context) {
	var q services.JobQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "Invalid query parameters")
		return
	}

	jobs, err := jc.jobs.List(q)
	if err != nil {
		respondError(c, err, "fetching jobs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(jobs),
		"jobs":    jobs,
	})
}

// GetPublicJobs godoc
// @Summary List accepted jobs
// @Tags jobs
// @Produce json
// @Success 200 {object} map[string]interface{} "count and jobs"
// @Router /jobs/public [get]
func (jc *JobController) GetPublicJobs(c *gin.Context) {
	jobs, err := jc.jobs.ListPublic()
	if err != nil {
		respondError(c, err, "fetching jobs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(jobs),
		"jobs":    jobs,
	})
}

// GetLatestJobs godoc
// @Summary Newest accepted jobs
// @Tags jobs
// @Produce json
// @Param limit query int false "Number of jobs (default 4, max 10)"
// @Success 200 {object} map[string]interface{} "count and jobs"
// @Router /jobs/latest [get]
func (jc *JobController) GetLatestJobs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "limit must be a number")
			return
		}
		limit = n
	}

	jobs, err := jc.jobs.ListLatest(limit)
	if err != nil {
		respondError(c, err, "fetching latest jobs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(jobs),
		"jobs":    jobs,
	})
}

// GetJob godoc
// @Summary Get a job
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "job"
// @Failure 400 {object} map[string]interface{} "Invalid job ID"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJob(c *gin.Context) {
	id, ok := parseID(c, "id", "job")
	if !ok {
		return
	}

	job, err := jc.jobs.GetByID(id)
	if err != nil {
		respondError(c, err, "fetching job")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     job,
	})
}

// UpdateJobStatus godoc
// @Summary Change a job's status
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param payload body statusRequest true "Pending, Accepted or Rejected"
// @Success 200 {object} map[string]interface{} "Updated job"
// @Failure 400 {object} map[string]interface{} "Invalid status value"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /jobs/{id}/status [put]
func (jc *JobController) UpdateJobStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "job")
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid status value")
		return
	}

	job, err := jc.jobs.UpdateStatus(c.Request.Context(), id, models.JobStatus(req.Status))
	if err != nil {
		respondError(c, err, "updating job status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     job,
	})
}

// DeleteJob godoc
// @Summary Delete a job
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Job deleted"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /jobs/{id} [delete]
func (jc *JobController) DeleteJob(c *gin.Context) {
	id, ok := parseID(c, "id", "job")
	if !ok {
		return
	}

	if err := jc.jobs.Delete(id); err != nil {
		respondError(c, err, "deleting job")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job successfully deleted",
	})
}
