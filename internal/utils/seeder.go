package utils

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"jobportal/internal/models"
	"jobportal/internal/repository"

	"github.com/google/uuid"
)

const (
	DefaultAdminName     = "Admin User"
	DefaultAdminEmail    = "admin@jobportal.com"
	DefaultAdminPassword = "admin123456"
)

// SeedAdmin creates an admin account unless the email is already taken.
// It reports whether a user was created.
func SeedAdmin(users repository.UserRepository, name, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < 6 {
		return false, fmt.Errorf("admin password must be at least 6 characters")
	}

	if existing, err := users.FindByEmail(email); err == nil {
		log.Printf("User %s already exists with role %s", existing.Email, existing.Role)
		return false, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("failed to look up %s: %w", email, err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}

	admin := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := users.Create(admin); err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}

	log.Printf("Admin user %s created successfully", email)
	return true, nil
}

// SampleJobs returns demo postings with codes IT001..ITnnn, all accepted.
func SampleJobs(n int, createdBy uuid.UUID) []models.Job {
	templates := []struct {
		jobType, field, position, workType, description string
	}{
		{"Full-time", "IT", "Backend Engineer", "Remote", "Build and operate Go services."},
		{"Full-time", "IT", "Frontend Developer", "Hybrid", "Ship accessible React interfaces."},
		{"Internship", "IT", "QA Intern", "On-site", "Write and automate test plans."},
		{"Part-time", "Finance", "Accounts Assistant", "On-site", "Maintain ledgers and reconcile payments."},
		{"Full-time", "Marketing", "Content Strategist", "Remote", "Plan campaigns across channels."},
		{"Contract", "Engineering", "Civil Site Engineer", "On-site", "Supervise construction sites."},
	}

	due := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	jobs := make([]models.Job, 0, n)
	for i := 0; i < n; i++ {
		t := templates[i%len(templates)]
		jobs = append(jobs, models.Job{
			Code:          fmt.Sprintf("IT%03d", i+1),
			Type:          t.jobType,
			Field:         t.field,
			DueDate:       due,
			Position:      t.position,
			WorkType:      t.workType,
			Location:      "Colombo",
			Email:         "careers@jobportal.com",
			ContactNumber: "0112345678",
			Description:   t.description,
			Status:        models.JobStatusAccepted,
			CreatedBy:     createdBy,
		})
	}
	return jobs
}

// SeedJobs inserts the sample postings, skipping codes that already exist.
func SeedJobs(jobs repository.JobRepository, n int, createdBy uuid.UUID) (int, error) {
	created := 0
	for _, job := range SampleJobs(n, createdBy) {
		job := job
		if err := jobs.Create(&job); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			return created, fmt.Errorf("failed to create job %s: %w", job.Code, err)
		}
		created++
	}
	log.Printf("Seeded %d jobs", created)
	return created, nil
}
