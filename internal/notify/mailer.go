package notify

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"jobportal/internal/models"
)

type Mailer interface {
	Send(recipient, subject, message string) error
}

type MailConfig struct {
	SMTPHost string
	SMTPPort string
	Username string
	Password string
	Sender   string
}

func (c MailConfig) Enabled() bool {
	return c.SMTPHost != "" && c.Sender != ""
}

type SMTPMailer struct {
	config MailConfig
}

func NewSMTPMailer(config MailConfig) *SMTPMailer {
	return &SMTPMailer{config: config}
}

func (m *SMTPMailer) Send(recipient, subject, message string) error {
	config := m.config
	smtpAddr := config.SMTPHost + ":" + config.SMTPPort

	client, err := smtp.Dial(smtpAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: config.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if config.Username != "" {
		auth := smtp.PlainAuth("", config.Username, config.Password, config.SMTPHost)
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err = client.Mail(config.Sender); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to create mail writer: %w", err)
	}
	if _, err = writer.Write([]byte(composeMessage(config.Sender, recipient, subject, message))); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close mail writer: %w", err)
	}

	if err = client.Quit(); err != nil {
		log.Printf("Failed to close SMTP connection properly: %v", err)
	}
	return nil
}

func composeMessage(sender, recipient, subject, message string) string {
	return fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		sender, recipient, subject, message)
}

// InterviewMessage renders the notification sent when an interview is scheduled.
func InterviewMessage(app *models.Application) (subject, body string) {
	position := "your application"
	if app.Job != nil && app.Job.Position != "" {
		position = app.Job.Position
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\r\n\r\n", app.FullName)
	fmt.Fprintf(&b, "An interview has been scheduled for %s.\r\n\r\n", position)
	fmt.Fprintf(&b, "Date: %s\r\n", deref(app.InterviewDate))
	fmt.Fprintf(&b, "Time: %s\r\n", deref(app.InterviewTime))
	fmt.Fprintf(&b, "Location: %s\r\n", deref(app.InterviewLocation))
	if notes := deref(app.InterviewNotes); notes != "" {
		fmt.Fprintf(&b, "Notes: %s\r\n", notes)
	}
	return "Interview scheduled: " + position, b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
