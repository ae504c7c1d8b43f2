package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"jobportal/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A unique in-memory database per test keeps tests independent.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}))
	return db
}

func seedJob(t *testing.T, db *gorm.DB, code string, status models.JobStatus, createdAt time.Time) *models.Job {
	t.Helper()
	job := &models.Job{
		Code:        code,
		Type:        "Engineer",
		Field:       "IT",
		DueDate:     "2025-01-01",
		Position:    "Engineer " + code,
		Description: "Build things",
		Status:      status,
		CreatedBy:   uuid.New(),
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func seedApplication(t *testing.T, db *gorm.DB, userID, jobID uuid.UUID, createdAt time.Time) *models.Application {
	t.Helper()
	app := &models.Application{
		UserID:           userID,
		JobID:            jobID,
		NameWithInitials: "J. Doe",
		FullName:         "John Doe",
		Gender:           models.GenderMale,
		DateOfBirth:      time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Email:            "john@example.com",
		ContactNumber:    "0771234567",
		Field:            "IT",
		CVFilePath:       "uploads/cvs/cv.pdf",
		CreatedAt:        createdAt,
	}
	require.NoError(t, db.Create(app).Error)
	return app
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{Name: "Jane", Email: "jane@example.com", Password: "hash"}
	require.NoError(t, repo.Create(user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)

	err := repo.Create(&models.User{Name: "Other", Email: "jane@example.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrDuplicate)

	found, err := repo.FindByEmail("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail("missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	promoted, err := repo.UpdateRole(user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)

	_, err = repo.UpdateRole(uuid.New(), models.RoleAdmin)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobRepositoryList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobRepository(db)
	now := time.Now()

	oldest := seedJob(t, db, "IT001", models.JobStatusAccepted, now.Add(-3*time.Hour))
	newest := seedJob(t, db, "IT002", models.JobStatusAccepted, now.Add(-1*time.Hour))
	seedJob(t, db, "IT003", models.JobStatusPending, now.Add(-2*time.Hour))
	other := &models.Job{Code: "HR001", Type: "Manager", Field: "HR", DueDate: "2025-02-01",
		Position: "People Lead", Description: "100% remote_friendly", Status: models.JobStatusAccepted,
		CreatedBy: uuid.New(), CreatedAt: now}
	require.NoError(t, db.Create(other).Error)

	t.Run("accepted newest first", func(t *testing.T) {
		jobs, err := repo.List(models.JobFilter{Status: models.JobStatusAccepted})
		require.NoError(t, err)
		require.Len(t, jobs, 3)
		assert.Equal(t, other.ID, jobs[0].ID)
		assert.Equal(t, newest.ID, jobs[1].ID)
		assert.Equal(t, oldest.ID, jobs[2].ID)
	})

	t.Run("all statuses", func(t *testing.T) {
		jobs, err := repo.List(models.JobFilter{})
		require.NoError(t, err)
		assert.Len(t, jobs, 4)
	})

	t.Run("field filter", func(t *testing.T) {
		jobs, err := repo.List(models.JobFilter{Field: "IT"})
		require.NoError(t, err)
		assert.Len(t, jobs, 3)
	})

	t.Run("case insensitive search", func(t *testing.T) {
		jobs, err := repo.List(models.JobFilter{Search: "people"})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "HR001", jobs[0].Code)
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		jobs, err := repo.List(models.JobFilter{Search: "100%"})
		require.NoError(t, err)
		require.Len(t, jobs, 1)

		jobs, err = repo.List(models.JobFilter{Search: "n_i"})
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("limit", func(t *testing.T) {
		jobs, err := repo.List(models.JobFilter{Status: models.JobStatusAccepted, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})
}

func TestJobRepositoryWrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobRepository(db)

	job := &models.Job{Code: "IT001", Type: "Engineer", Field: "IT", DueDate: "2025-01-01", Position: "Engineer", CreatedBy: uuid.New()}
	require.NoError(t, repo.Create(job))
	assert.Equal(t, models.JobStatusPending, job.Status)

	dup := &models.Job{Code: "IT001", Type: "Engineer", Field: "IT", DueDate: "2025-01-01", Position: "Engineer", CreatedBy: uuid.New()}
	assert.ErrorIs(t, repo.Create(dup), ErrDuplicate)

	updated, err := repo.UpdateStatus(job.ID, models.JobStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusAccepted, updated.Status)

	_, err = repo.UpdateStatus(uuid.New(), models.JobStatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Delete(job.ID))
	_, err = repo.FindByID(job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(job.ID), ErrNotFound)
}

func TestApplicationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	now := time.Now()

	job := seedJob(t, db, "IT001", models.JobStatusAccepted, now)
	job2 := seedJob(t, db, "IT002", models.JobStatusAccepted, now)
	userID := uuid.New()

	first := seedApplication(t, db, userID, job.ID, now.Add(-time.Hour))
	second := seedApplication(t, db, userID, job2.ID, now)
	third := seedApplication(t, db, uuid.New(), job.ID, now.Add(-2*time.Hour))

	t.Run("unique user and job", func(t *testing.T) {
		dup := &models.Application{UserID: userID, JobID: job.ID, NameWithInitials: "x", FullName: "x",
			Gender: models.GenderOther, DateOfBirth: now, Email: "x", ContactNumber: "x", Field: "x"}
		assert.ErrorIs(t, repo.Create(dup), ErrDuplicate)
	})

	t.Run("find by user and job", func(t *testing.T) {
		found, err := repo.FindByUserAndJob(userID, job.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, found.ID)

		_, err = repo.FindByUserAndJob(uuid.New(), job.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list by user joins job and hides hidden", func(t *testing.T) {
		_, err := repo.Hide(first.ID)
		require.NoError(t, err)

		apps, err := repo.ListByUser(userID)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, second.ID, apps[0].ID)
		require.NotNil(t, apps[0].Job)
		assert.Equal(t, "IT002", apps[0].Job.Code)
		assert.Empty(t, apps[0].Job.Description)
	})

	t.Run("list all and by status", func(t *testing.T) {
		apps, err := repo.List("")
		require.NoError(t, err)
		require.Len(t, apps, 3)
		assert.Equal(t, second.ID, apps[0].ID)
		assert.Equal(t, third.ID, apps[2].ID)
		for _, app := range apps {
			require.NotNil(t, app.Job, "application %s", app.ID)
			assert.Equal(t, app.JobID, app.Job.ID)
		}
		assert.Equal(t, "IT001", apps[2].Job.Code)

		_, err = repo.UpdateStatus(third.ID, models.ApplicationStatusShortlisted)
		require.NoError(t, err)

		shortlisted, err := repo.List(models.ApplicationStatusShortlisted)
		require.NoError(t, err)
		require.Len(t, shortlisted, 1)
		assert.Equal(t, third.ID, shortlisted[0].ID)
		require.NotNil(t, shortlisted[0].Job)
		assert.Equal(t, "Engineer IT001", shortlisted[0].Job.Position)
	})

	t.Run("interview", func(t *testing.T) {
		updated, err := repo.UpdateInterview(third.ID, models.Interview{Date: "2025-03-01", Time: "10:00", Location: "HQ"})
		require.NoError(t, err)
		require.NotNil(t, updated.InterviewLocation)
		assert.Equal(t, "HQ", *updated.InterviewLocation)
		require.NotNil(t, updated.InterviewNotes)
		assert.Equal(t, "", *updated.InterviewNotes)
		require.NotNil(t, updated.Job)
		assert.Equal(t, "IT001", updated.Job.Code)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(second.ID))
		assert.ErrorIs(t, repo.Delete(second.ID), ErrNotFound)
		_, err := repo.UpdateStatus(second.ID, models.ApplicationStatusAccepted)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestApplicationBelongsToJob(t *testing.T) {
	s, err := schema.Parse(&models.Application{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	rel, ok := s.Relationships.Relations["Job"]
	require.True(t, ok)
	assert.Equal(t, schema.BelongsTo, rel.Type)
	require.Len(t, rel.References, 1)
	assert.Equal(t, "JobID", rel.References[0].ForeignKey.Name)
	assert.Equal(t, "ID", rel.References[0].PrimaryKey.Name)
}
