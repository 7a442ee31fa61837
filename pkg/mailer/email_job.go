package mailer

import (
	"errors"
	"strings"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template (rendered by the worker from Data) or Subject plus a body is set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // "welcome" or "login_notification"
	Data     map[string]any `json:"data,omitempty"`
}

var (
	ErrNoRecipient = errors.New("email job has no recipient")
	ErrNoContent   = errors.New("email job has neither template nor body")
)

// Validate reports whether the job can be rendered and sent.
func (j EmailJob) Validate() error {
	if strings.TrimSpace(j.To) == "" {
		return ErrNoRecipient
	}
	if j.Template == "" && j.Text == "" && j.HTML == "" {
		return ErrNoContent
	}
	return nil
}
