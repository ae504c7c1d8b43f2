package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"conflict", Conflict("dup"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("no"), http.StatusUnauthorized},
		{"forbidden", Forbidden("no"), http.StatusForbidden},
		{"not found", NotFound("gone"), http.StatusNotFound},
		{"internal", Wrap(KindInternal, "boom", errors.New("db")), http.StatusInternalServerError},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", NotFound("gone")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestWithCodeCopies(t *testing.T) {
	base := Unauthorized("Token expired")
	tagged := base.WithCode("TOKEN_EXPIRED")

	assert.Empty(t, base.Code)
	assert.Equal(t, "TOKEN_EXPIRED", tagged.Code)
	assert.True(t, Is(tagged, KindUnauthorized))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Wrap(KindInternal, "save failed", errors.New("disk full"))
	assert.Equal(t, "save failed: disk full", err.Error())
	assert.ErrorContains(t, err, "disk full")
}
