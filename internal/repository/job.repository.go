package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobportal/internal/cache"
	"jobportal/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	acceptedJobsCacheKeyPrefix = "jobs:accepted:"
	jobsCacheExpiration        = 10 * time.Minute
	// MaxLatestJobs bounds both the latest-jobs limit and the set of cache keys to invalidate.
	MaxLatestJobs = 10
)

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id uuid.UUID) (*models.Job, error)
	List(filter models.JobFilter) ([]models.Job, error)
	UpdateStatus(id uuid.UUID, status models.JobStatus) (*models.Job, error)
	Delete(id uuid.UUID) error
}

type jobRepository struct {
	db    *gorm.DB
	cache *cache.RedisClient
	ctx   context.Context
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{
		db:  db,
		ctx: context.Background(),
	}
}

// NewCachedJobRepository caches the unfiltered Accepted listings (public and latest) in Redis.
func NewCachedJobRepository(db *gorm.DB, redisClient *cache.RedisClient) JobRepository {
	return &jobRepository{
		db:    db,
		cache: redisClient,
		ctx:   context.Background(),
	}
}

func acceptedJobsCacheKey(limit int) string {
	return fmt.Sprintf("%s%d", acceptedJobsCacheKeyPrefix, limit)
}

func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return translate(err)
	}
	r.invalidate()
	return nil
}

func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.First(&job, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (r *jobRepository) List(filter models.JobFilter) ([]models.Job, error) {
	cacheable := r.cache != nil && filter.Status == models.JobStatusAccepted &&
		filter.Field == "" && filter.Search == "" && filter.Limit >= 0 && filter.Limit <= MaxLatestJobs

	if cacheable {
		var jobs []models.Job
		found, err := r.cache.GetJSON(r.ctx, acceptedJobsCacheKey(filter.Limit), &jobs)
		if err != nil {
			log.Printf("Failed to read jobs cache: %v", err)
		} else if found {
			return jobs, nil
		}
	}

	jobs, err := r.query(filter)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := r.cache.SetJSON(r.ctx, acceptedJobsCacheKey(filter.Limit), jobs, jobsCacheExpiration); err != nil {
			log.Printf("Failed to cache jobs: %v", err)
		}
	}

	return jobs, nil
}

func (r *jobRepository) query(filter models.JobFilter) ([]models.Job, error) {
	q := r.db.Model(&models.Job{})
	if filter.Field != "" {
		q = q.Where("field = ?", filter.Field)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		q = q.Where(
			`LOWER(type) LIKE ? ESCAPE '\' OR LOWER(position) LIKE ? ESCAPE '\' OR LOWER(field) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	jobs := []models.Job{}
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) UpdateStatus(id uuid.UUID, status models.JobStatus) (*models.Job, error) {
	result := r.db.Model(&models.Job{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	r.invalidate()
	return r.FindByID(id)
}

func (r *jobRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	r.invalidate()
	return nil
}

func (r *jobRepository) invalidate() {
	if r.cache == nil {
		return
	}
	keys := make([]string, 0, MaxLatestJobs+1)
	for limit := 0; limit <= MaxLatestJobs; limit++ {
		keys = append(keys, acceptedJobsCacheKey(limit))
	}
	if err := r.cache.Delete(r.ctx, keys...); err != nil {
		log.Printf("Failed to invalidate jobs cache: %v", err)
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
