package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusPending  JobStatus = "Pending"
	JobStatusAccepted JobStatus = "Accepted"
	JobStatusRejected JobStatus = "Rejected"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusAccepted, JobStatusRejected:
		return true
	default:
		return false
	}
}

// Job is a posting. Code is the human-assigned job id ("IT001"); ID is the storage key used in URLs.
type Job struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code          string    `gorm:"column:job_id;uniqueIndex;not null" json:"jobId"`
	Type          string    `gorm:"not null" json:"type"`
	Field         string    `gorm:"not null;index" json:"field"`
	DueDate       string    `gorm:"not null" json:"dueDate"`
	Position      string    `gorm:"not null" json:"position"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	Salary        string    `json:"salary,omitempty"`
	Background    string    `json:"background,omitempty"`
	Location      string    `json:"location,omitempty"`
	Email         string    `json:"email,omitempty"`
	WorkType      string    `json:"workType,omitempty"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	Status        JobStatus `gorm:"type:varchar(20);not null;default:Pending;index" json:"status"`
	CreatedBy     uuid.UUID `gorm:"type:uuid;index" json:"createdBy"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Status == "" {
		j.Status = JobStatusPending
	}
	return nil
}

// JobFilter is a conjunction of optional constraints for job listings.
// An empty Status means every status.
type JobFilter struct {
	Field  string
	Status JobStatus
	Search string
	Limit  int
}
