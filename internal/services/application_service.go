package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"jobportal/internal/apperror"
	"jobportal/internal/events"
	"jobportal/internal/models"
	"jobportal/internal/notify"
	"jobportal/internal/policy"
	"jobportal/internal/repository"
	"jobportal/internal/storage"

	"github.com/google/uuid"
)

// CVStorage persists uploaded CV files. *storage.CVStore is the production implementation.
type CVStorage interface {
	Validate(fh *multipart.FileHeader) error
	Save(userID uuid.UUID, fh *multipart.FileHeader) (string, error)
	Remove(path string) error
	Locate(path string) (string, error)
	MaxBytes() int64
}

type SubmitApplicationInput struct {
	JobID            string `form:"jobId" validate:"required"`
	NameWithInitials string `form:"nameWithInitials" validate:"required"`
	FullName         string `form:"fullName" validate:"required"`
	Gender           string `form:"gender" validate:"required,oneof=male female other"`
	DateOfBirth      string `form:"dateOfBirth" validate:"required"`
	Email            string `form:"email" validate:"required,email"`
	ContactNumber    string `form:"contactNumber" validate:"required"`
	Field            string `form:"field" validate:"required"`
}

type InterviewInput struct {
	InterviewDate     string `json:"interviewDate"`
	InterviewTime     string `json:"interviewTime"`
	InterviewLocation string `json:"interviewLocation"`
	InterviewNotes    string `json:"interviewNotes"`
}

type ApplicationService struct {
	apps   repository.ApplicationRepository
	jobs   repository.JobRepository
	files  CVStorage
	events events.Publisher
	mailer notify.Mailer
}

func NewApplicationService(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	files CVStorage,
	publisher events.Publisher,
	mailer notify.Mailer,
) *ApplicationService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ApplicationService{apps: apps, jobs: jobs, files: files, events: publisher, mailer: mailer}
}

// Submit validates the upload before touching the database, then stores the file and the
// record. The stored file is removed again if the record cannot be created.
func (s *ApplicationService) Submit(ctx context.Context, userID uuid.UUID, in SubmitApplicationInput, cv *multipart.FileHeader) (*models.Application, error) {
	if err := s.validateCV(cv); err != nil {
		return nil, err
	}

	if err := validateInput(in); err != nil {
		return nil, err
	}
	jobID, err := uuid.Parse(strings.TrimSpace(in.JobID))
	if err != nil {
		return nil, apperror.Validation("Invalid job ID")
	}
	dob, err := parseDateOfBirth(in.DateOfBirth)
	if err != nil {
		return nil, apperror.Validation("dateOfBirth must be a valid date (YYYY-MM-DD)")
	}

	if _, err := s.apps.FindByUserAndJob(userID, jobID); err == nil {
		return nil, apperror.Conflict("You have already applied for this job")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}

	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		return nil, jobLookupError(err)
	}
	if job.Status != models.JobStatusAccepted {
		return nil, apperror.Validation("This job is not accepting applications at the moment")
	}

	path, err := s.files.Save(userID, cv)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			return nil, s.tooLarge()
		}
		return nil, fmt.Errorf("failed to store cv: %w", err)
	}

	app := &models.Application{
		UserID:           userID,
		JobID:            jobID,
		NameWithInitials: strings.TrimSpace(in.NameWithInitials),
		FullName:         strings.TrimSpace(in.FullName),
		Gender:           models.Gender(in.Gender),
		DateOfBirth:      dob,
		Email:            normalizeEmail(in.Email),
		ContactNumber:    strings.TrimSpace(in.ContactNumber),
		Field:            strings.TrimSpace(in.Field),
		CVFilePath:       path,
		Status:           models.ApplicationStatusPending,
	}
	if err := s.apps.Create(app); err != nil {
		if rmErr := s.files.Remove(path); rmErr != nil {
			log.Printf("Failed to remove orphaned cv %s: %v", path, rmErr)
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied for this job")
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.publish(ctx, events.NewEvent(events.ApplicationSubmitted, map[string]interface{}{
		"applicationId": app.ID.String(),
		"userId":        userID.String(),
		"jobId":         jobID.String(),
	}))
	return app, nil
}

func (s *ApplicationService) validateCV(cv *multipart.FileHeader) error {
	switch err := s.files.Validate(cv); {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrFileRequired):
		return apperror.Validation("Please upload your CV")
	case errors.Is(err, storage.ErrFileType):
		return apperror.Validation("Only PDF, DOC, and DOCX files are allowed")
	case errors.Is(err, storage.ErrFileTooLarge):
		return s.tooLarge()
	default:
		return fmt.Errorf("failed to validate cv: %w", err)
	}
}

func (s *ApplicationService) tooLarge() error {
	return apperror.Validation(fmt.Sprintf("File too large. Maximum size is %dMB", s.files.MaxBytes()/(1024*1024)))
}

func parseDateOfBirth(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

func (s *ApplicationService) ListMine(userID uuid.UUID) ([]models.Application, error) {
	apps, err := s.apps.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

func (s *ApplicationService) ListAll() ([]models.Application, error) {
	apps, err := s.apps.List("")
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

func (s *ApplicationService) ListShortlisted() ([]models.Application, error) {
	apps, err := s.apps.List(models.ApplicationStatusShortlisted)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortlisted applications: %w", err)
	}
	return apps, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, apperror.Validation("Invalid status value")
	}

	app, err := s.apps.UpdateStatus(id, status)
	if err != nil {
		return nil, applicationLookupError(err)
	}

	s.publish(ctx, events.NewEvent(events.ApplicationStatusChanged, map[string]interface{}{
		"applicationId": app.ID.String(),
		"status":        string(app.Status),
	}))
	return app, nil
}

func (s *ApplicationService) ScheduleInterview(ctx context.Context, id uuid.UUID, in InterviewInput) (*models.Application, error) {
	interview := models.Interview{
		Date:     strings.TrimSpace(in.InterviewDate),
		Time:     strings.TrimSpace(in.InterviewTime),
		Location: strings.TrimSpace(in.InterviewLocation),
		Notes:    in.InterviewNotes,
	}
	if interview.Date == "" || interview.Time == "" || interview.Location == "" {
		return nil, apperror.Validation("Please provide date, time, and location")
	}

	app, err := s.apps.UpdateInterview(id, interview)
	if err != nil {
		return nil, applicationLookupError(err)
	}

	s.publish(ctx, events.NewEvent(events.ApplicationInterviewScheduled, map[string]interface{}{
		"applicationId": app.ID.String(),
		"date":          interview.Date,
		"time":          interview.Time,
		"location":      interview.Location,
	}))
	s.notifyInterview(app)
	return app, nil
}

// notifyInterview mails the applicant in the background; failures are only logged.
func (s *ApplicationService) notifyInterview(app *models.Application) {
	if s.mailer == nil || app.Email == "" {
		return
	}
	subject, body := notify.InterviewMessage(app)
	go func(recipient string) {
		if err := s.mailer.Send(recipient, subject, body); err != nil {
			log.Printf("Failed to send interview email to %s: %v", recipient, err)
		}
	}(app.Email)
}

func (s *ApplicationService) Delete(ctx context.Context, id uuid.UUID) error {
	app, err := s.apps.FindByID(id)
	if err != nil {
		return applicationLookupError(err)
	}

	if err := s.apps.Delete(id); err != nil {
		return applicationLookupError(err)
	}

	// The record is gone either way; a file left behind is only logged.
	if err := s.files.Remove(app.CVFilePath); err != nil {
		log.Printf("Failed to remove cv %s of deleted application %s: %v", app.CVFilePath, id, err)
	}

	s.publish(ctx, events.NewEvent(events.ApplicationDeleted, map[string]interface{}{
		"applicationId": id.String(),
	}))
	return nil
}

// CVPath resolves the on-disk location of an application's CV.
func (s *ApplicationService) CVPath(id uuid.UUID) (string, error) {
	app, err := s.apps.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperror.NotFound("CV not found")
		}
		return "", fmt.Errorf("application repository: %w", err)
	}
	if app.CVFilePath == "" {
		return "", apperror.NotFound("CV not found")
	}

	path, err := s.files.Locate(app.CVFilePath)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return "", apperror.NotFound("CV file not found on server")
		}
		return "", fmt.Errorf("failed to locate cv: %w", err)
	}
	return path, nil
}

// Hide removes an application from its owner's list without deleting it.
func (s *ApplicationService) Hide(id, callerID uuid.UUID) (*models.Application, error) {
	app, err := s.apps.FindByID(id)
	if err != nil {
		return nil, applicationLookupError(err)
	}
	if !policy.Owns(callerID, app) {
		return nil, apperror.Forbidden("Not authorized to modify this application")
	}

	hidden, err := s.apps.Hide(id)
	if err != nil {
		return nil, applicationLookupError(err)
	}
	return hidden, nil
}

func (s *ApplicationService) publish(ctx context.Context, event events.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		log.Printf("Failed to publish %s: %v", event.Name, err)
	}
}

func applicationLookupError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Application not found")
	}
	return fmt.Errorf("application repository: %w", err)
}
