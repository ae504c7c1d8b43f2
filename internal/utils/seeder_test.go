package utils

import (
	"errors"
	"testing"

	"jobportal/internal/models"
	"jobportal/internal/repository"
	"jobportal/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeedAdmin(t *testing.T) {
	users := new(mocks.MockUserRepository)
	users.On("FindByEmail", DefaultAdminEmail).Return(nil, repository.ErrNotFound)
	users.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	created, err := SeedAdmin(users, DefaultAdminName, " Admin@JobPortal.com ", DefaultAdminPassword)

	require.NoError(t, err)
	assert.True(t, created)
	admin := users.Calls[1].Arguments.Get(0).(*models.User)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, DefaultAdminEmail, admin.Email)
	assert.True(t, CheckPassword(admin.Password, DefaultAdminPassword))
}

func TestSeedAdminExisting(t *testing.T) {
	users := new(mocks.MockUserRepository)
	users.On("FindByEmail", DefaultAdminEmail).Return(&models.User{Email: DefaultAdminEmail, Role: models.RoleAdmin}, nil)

	created, err := SeedAdmin(users, DefaultAdminName, DefaultAdminEmail, DefaultAdminPassword)

	require.NoError(t, err)
	assert.False(t, created)
	users.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSeedAdminShortPassword(t *testing.T) {
	_, err := SeedAdmin(new(mocks.MockUserRepository), DefaultAdminName, DefaultAdminEmail, "123")
	assert.Error(t, err)
}

func TestSeedJobs(t *testing.T) {
	creator := uuid.New()
	jobs := new(mocks.MockJobRepository)
	jobs.On("Create", mock.MatchedBy(func(j *models.Job) bool { return j.Code == "IT002" })).Return(repository.ErrDuplicate)
	jobs.On("Create", mock.MatchedBy(func(j *models.Job) bool { return j.Code != "IT002" })).Return(nil)

	created, err := SeedJobs(jobs, 3, creator)

	require.NoError(t, err)
	assert.Equal(t, 2, created)
	for _, call := range jobs.Calls {
		job := call.Arguments.Get(0).(*models.Job)
		assert.Equal(t, models.JobStatusAccepted, job.Status)
		assert.Equal(t, creator, job.CreatedBy)
	}
}

func TestSeedJobsStopsOnError(t *testing.T) {
	jobs := new(mocks.MockJobRepository)
	jobs.On("Create", mock.Anything).Return(errors.New("db down"))

	created, err := SeedJobs(jobs, 3, uuid.New())

	assert.Error(t, err)
	assert.Equal(t, 0, created)
}
