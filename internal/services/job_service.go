package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"jobportal/internal/apperror"
	"jobportal/internal/events"
	"jobportal/internal/models"
	"jobportal/internal/repository"

	"github.com/google/uuid"
)

const (
	DefaultLatestJobs = 4
	// StatusAll disables the status filter on the authenticated listing.
	StatusAll = "all"
)

type CreateJobInput struct {
	JobID         string `json:"jobId" validate:"required"`
	Type          string `json:"type" validate:"required"`
	Field         string `json:"field" validate:"required"`
	DueDate       string `json:"dueDate" validate:"required"`
	Position      string `json:"position" validate:"required"`
	ContactNumber string `json:"contactNumber"`
	Salary        string `json:"salary"`
	Background    string `json:"background"`
	Location      string `json:"location"`
	Email         string `json:"email"`
	WorkType      string `json:"workType"`
	Description   string `json:"description"`
}

type JobQuery struct {
	Field  string `form:"field"`
	Status string `form:"status"`
	Search string `form:"search"`
}

type JobService struct {
	jobs   repository.JobRepository
	events events.Publisher
}

func NewJobService(jobs repository.JobRepository, publisher events.Publisher) *JobService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &JobService{jobs: jobs, events: publisher}
}

func (s *JobService) Create(in CreateJobInput, creatorID uuid.UUID) (*models.Job, error) {
	in.JobID = strings.TrimSpace(in.JobID)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	job := &models.Job{
		Code:          in.JobID,
		Type:          in.Type,
		Field:         in.Field,
		DueDate:       in.DueDate,
		Position:      in.Position,
		ContactNumber: in.ContactNumber,
		Salary:        in.Salary,
		Background:    in.Background,
		Location:      in.Location,
		Email:         in.Email,
		WorkType:      in.WorkType,
		Description:   in.Description,
		Status:        models.JobStatusPending,
		CreatedBy:     creatorID,
	}
	if err := s.jobs.Create(job); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("Job ID already exists")
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// List applies the authenticated filters. An omitted status means Accepted; "all" means any.
func (s *JobService) List(q JobQuery) ([]models.Job, error) {
	filter := models.JobFilter{
		Field:  strings.TrimSpace(q.Field),
		Search: strings.TrimSpace(q.Search),
	}

	switch status := strings.TrimSpace(q.Status); {
	case status == "":
		filter.Status = models.JobStatusAccepted
	case strings.EqualFold(status, StatusAll):
	default:
		filter.Status = models.JobStatus(status)
		if !filter.Status.Valid() {
			return nil, apperror.Validation("Invalid status value")
		}
	}

	jobs, err := s.jobs.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (s *JobService) ListPublic() ([]models.Job, error) {
	jobs, err := s.jobs.List(models.JobFilter{Status: models.JobStatusAccepted})
	if err != nil {
		return nil, fmt.Errorf("failed to list public jobs: %w", err)
	}
	return jobs, nil
}

// ListLatest returns the newest accepted jobs. limit <= 0 selects the default; larger
// values are capped at repository.MaxLatestJobs.
func (s *JobService) ListLatest(limit int) ([]models.Job, error) {
	if limit <= 0 {
		limit = DefaultLatestJobs
	}
	if limit > repository.MaxLatestJobs {
		limit = repository.MaxLatestJobs
	}

	jobs, err := s.jobs.List(models.JobFilter{Status: models.JobStatusAccepted, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list latest jobs: %w", err)
	}
	return jobs, nil
}

func (s *JobService) GetByID(id uuid.UUID) (*models.Job, error) {
	job, err := s.jobs.FindByID(id)
	if err != nil {
		return nil, jobLookupError(err)
	}
	return job, nil
}

func (s *JobService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*models.Job, error) {
	if !status.Valid() {
		return nil, apperror.Validation("Invalid status value")
	}

	job, err := s.jobs.UpdateStatus(id, status)
	if err != nil {
		return nil, jobLookupError(err)
	}

	s.publish(ctx, events.NewEvent(events.JobStatusChanged, map[string]interface{}{
		"jobId":  job.ID.String(),
		"code":   job.Code,
		"status": string(job.Status),
	}))
	return job, nil
}

func (s *JobService) Delete(id uuid.UUID) error {
	if err := s.jobs.Delete(id); err != nil {
		return jobLookupError(err)
	}
	return nil
}

func (s *JobService) publish(ctx context.Context, event events.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		log.Printf("Failed to publish %s: %v", event.Name, err)
	}
}

func jobLookupError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Job not found")
	}
	return fmt.Errorf("job repository: %w", err)
}
