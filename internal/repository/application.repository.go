package repository

import (
	"jobportal/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id uuid.UUID) (*models.Application, error)
	FindByUserAndJob(userID, jobID uuid.UUID) (*models.Application, error)
	ListByUser(userID uuid.UUID) ([]models.Application, error)
	List(status models.ApplicationStatus) ([]models.Application, error)
	UpdateStatus(id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
	UpdateInterview(id uuid.UUID, interview models.Interview) (*models.Application, error)
	Hide(id uuid.UUID) (*models.Application, error)
	Delete(id uuid.UUID) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// withJob joins the job projection shown next to each application.
func withJob(db *gorm.DB) *gorm.DB {
	return db.Preload("Job", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "job_id", "type", "position", "field")
	})
}

func (r *applicationRepository) Create(app *models.Application) error {
	return translate(r.db.Create(app).Error)
}

func (r *applicationRepository) FindByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := withJob(r.db).First(&app, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (r *applicationRepository) FindByUserAndJob(userID, jobID uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.Where("user_id = ? AND job_id = ?", userID, jobID).First(&app).Error; err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (r *applicationRepository) ListByUser(userID uuid.UUID) ([]models.Application, error) {
	apps := []models.Application{}
	err := withJob(r.db).
		Where("user_id = ? AND hidden_by_user = ?", userID, false).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) List(status models.ApplicationStatus) ([]models.Application, error) {
	q := withJob(r.db)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	apps := []models.Application{}
	err := q.Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	return r.update(id, map[string]interface{}{"status": status})
}

func (r *applicationRepository) UpdateInterview(id uuid.UUID, interview models.Interview) (*models.Application, error) {
	return r.update(id, map[string]interface{}{
		"interview_date":     interview.Date,
		"interview_time":     interview.Time,
		"interview_location": interview.Location,
		"interview_notes":    interview.Notes,
	})
}

func (r *applicationRepository) Hide(id uuid.UUID) (*models.Application, error) {
	return r.update(id, map[string]interface{}{"hidden_by_user": true})
}

func (r *applicationRepository) update(id uuid.UUID, data map[string]interface{}) (*models.Application, error) {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}

func (r *applicationRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Application{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
