package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobportal/internal/models"
)

func strPtr(s string) *string { return &s }

func TestInterviewMessage(t *testing.T) {
	app := &models.Application{
		FullName:          "John Doe",
		Job:               &models.Job{Position: "Backend Engineer"},
		InterviewDate:     strPtr("2025-03-01"),
		InterviewTime:     strPtr("10:00"),
		InterviewLocation: strPtr("Head Office"),
		InterviewNotes:    strPtr(""),
	}

	subject, body := InterviewMessage(app)

	assert.Equal(t, "Interview scheduled: Backend Engineer", subject)
	assert.Contains(t, body, "Dear John Doe")
	assert.Contains(t, body, "Date: 2025-03-01")
	assert.Contains(t, body, "Location: Head Office")
	assert.NotContains(t, body, "Notes:")
}

func TestInterviewMessageWithoutJob(t *testing.T) {
	subject, _ := InterviewMessage(&models.Application{FullName: "Jane"})
	assert.Equal(t, "Interview scheduled: your application", subject)
}

func TestComposeMessageHeaders(t *testing.T) {
	msg := composeMessage("hr@jobportal.com", "john@example.com", "Hello", "Body")
	assert.True(t, strings.HasPrefix(msg, "From: hr@jobportal.com\r\nTo: john@example.com\r\nSubject: Hello\r\n"))
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nBody"))
}

func TestMailConfigEnabled(t *testing.T) {
	assert.False(t, MailConfig{}.Enabled())
	assert.True(t, MailConfig{SMTPHost: "smtp.example.com", Sender: "hr@example.com"}.Enabled())
}
