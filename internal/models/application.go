package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "Pending"
	ApplicationStatusReviewing   ApplicationStatus = "Reviewing"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
	ApplicationStatusAccepted    ApplicationStatus = "Accepted"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		return true
	default:
		return false
	}
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Application is one candidate's submission against one Job.
// The (user_id, job_id) pair is unique.
type Application struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"user"`
	JobID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job;index" json:"jobRef"`
	Job    *Job      `gorm:"foreignKey:JobID;references:ID" json:"job,omitempty"`

	NameWithInitials string            `gorm:"not null" json:"nameWithInitials"`
	FullName         string            `gorm:"not null" json:"fullName"`
	Gender           Gender            `gorm:"type:varchar(10);not null" json:"gender"`
	DateOfBirth      time.Time         `gorm:"not null" json:"dateOfBirth"`
	Email            string            `gorm:"not null" json:"email"`
	ContactNumber    string            `gorm:"not null" json:"contactNumber"`
	Field            string            `gorm:"not null" json:"field"`
	CVFilePath       string            `json:"cvFilePath"`
	Status           ApplicationStatus `gorm:"type:varchar(20);not null;default:Pending;index" json:"status"`
	HiddenByUser     bool              `gorm:"not null;default:false" json:"hiddenByUser"`
	CreatedAt        time.Time         `gorm:"index" json:"createdAt"`

	InterviewDate     *string `json:"interviewDate"`
	InterviewTime     *string `json:"interviewTime"`
	InterviewLocation *string `json:"interviewLocation"`
	InterviewNotes    *string `json:"interviewNotes"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = ApplicationStatusPending
	}
	return nil
}

// OwnerID lets the ownership policy check who submitted the application.
func (a *Application) OwnerID() uuid.UUID {
	return a.UserID
}

type Interview struct {
	Date     string
	Time     string
	Location string
	Notes    string
}
