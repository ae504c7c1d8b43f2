package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobportal/internal/apperror"
	"jobportal/internal/middleware"
	"jobportal/internal/models"
	"jobportal/internal/repository"
	"jobportal/internal/repository/mocks"
	"jobportal/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantCode   string
	}{
		{"validation", apperror.Validation("name is required"), http.StatusBadRequest, "name is required", ""},
		{"conflict", apperror.Conflict("Email already registered"), http.StatusBadRequest, "Email already registered", ""},
		{"unauthorized with code", apperror.Unauthorized("Token expired").WithCode("TOKEN_EXPIRED"), http.StatusUnauthorized, "Token expired", "TOKEN_EXPIRED"},
		{"forbidden", apperror.Forbidden("nope"), http.StatusForbidden, "nope", ""},
		{"not found", apperror.NotFound("Job not found"), http.StatusNotFound, "Job not found", ""},
		{"unclassified", errors.New("pq: connection refused"), http.StatusInternalServerError, "Server error while fetching jobs", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err, "fetching jobs")

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantError, body["error"])
			if tt.wantCode == "" {
				assert.NotContains(t, body, "code")
			} else {
				assert.Equal(t, tt.wantCode, body["code"])
			}
			assert.NotContains(t, w.Body.String(), "pq:")
		})
	}
}

func TestRegisterHandler(t *testing.T) {
	users := new(mocks.MockUserRepository)
	users.On("FindByEmail", "john@example.com").Return(nil, repository.ErrNotFound)
	users.On("Create", mock.AnythingOfType("*models.User")).Return(nil)
	controller := NewAuthController(services.NewAuthService(users, "secret", time.Hour, ""))

	router := gin.New()
	router.POST("/register", controller.Register)

	t.Run("created", func(t *testing.T) {
		payload := []byte(`{"name":"John","email":"john@example.com","password":"secret1"}`)
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, body["token"])
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader([]byte(`{"name":`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request data", decode(t, w)["error"])
	})
}

func TestGetLatestJobsHandler(t *testing.T) {
	jobs := new(mocks.MockJobRepository)
	jobs.On("List", models.JobFilter{Status: models.JobStatusAccepted, Limit: 4}).
		Return([]models.Job{{Code: "IT002"}, {Code: "IT001"}}, nil)
	controller := NewJobController(services.NewJobService(jobs, nil))

	router := gin.New()
	router.GET("/jobs/latest", controller.GetLatestJobs)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/latest", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decode(t, w)["count"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/latest?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetJobsHandlerInternalError(t *testing.T) {
	jobs := new(mocks.MockJobRepository)
	jobs.On("List", mock.Anything).Return(nil, errors.New("connection reset"))
	controller := NewJobController(services.NewJobService(jobs, nil))

	router := gin.New()
	router.GET("/jobs", controller.GetJobs)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error while fetching jobs", decode(t, w)["error"])
}

func TestHideApplicationHandlerInvalidID(t *testing.T) {
	apps := new(mocks.MockApplicationRepository)
	controller := NewApplicationController(services.NewApplicationService(apps, nil, nil, nil, nil), 5<<20)

	router := gin.New()
	router.PUT("/applications/:id/hide", func(c *gin.Context) {
		c.Set(middleware.ContextUser, &models.User{ID: uuid.New(), Role: models.RoleUser})
	}, controller.HideApplication)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/applications/123/hide", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid application ID", decode(t, w)["error"])
	assert.Empty(t, apps.Calls)
}
