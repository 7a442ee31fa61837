package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	mailtpl "github.com/oksasatya/go-job-board/pkg/mailer/templates"
)

// Outcome tells the consumer loop how to settle a delivery.
type Outcome int

const (
	Ack Outcome = iota
	Drop
	Retry
)

// Worker renders queued email jobs and hands them to a Sender.
type Worker struct {
	Sender      Sender
	Logger      *logrus.Logger
	SendTimeout time.Duration
}

func NewWorker(sender Sender, logger *logrus.Logger) *Worker {
	return &Worker{Sender: sender, Logger: logger, SendTimeout: 15 * time.Second}
}

// Handle processes one queue message. Malformed or unrenderable jobs are
// dropped; send failures are retried.
func (w *Worker) Handle(ctx context.Context, body []byte) Outcome {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.Logger.WithError(err).Warn("email: bad message")
		return Drop
	}
	if err := job.Validate(); err != nil {
		w.Logger.WithError(err).WithField("template", job.Template).Warn("email: invalid job")
		return Drop
	}

	subject, text, html, err := w.render(job)
	if err != nil {
		w.Logger.WithError(err).WithField("template", job.Template).Error("email: render failed")
		return Drop
	}

	c, cancel := context.WithTimeout(ctx, w.SendTimeout)
	defer cancel()
	if err := w.Sender.Send(c, job.To, subject, text, html); err != nil {
		w.Logger.WithError(err).WithField("to", job.To).Warn("email: send failed")
		return Retry
	}
	w.Logger.WithFields(logrus.Fields{"to": job.To, "template": job.Template}).Info("email: sent")
	return Ack
}

func (w *Worker) render(job EmailJob) (string, string, string, error) {
	if job.Template == "" {
		return job.Subject, job.Text, job.HTML, nil
	}
	if !mailtpl.Known(job.Template) {
		return "", "", "", fmt.Errorf("unknown template %q", job.Template)
	}
	subject, text, html, err := mailtpl.Render(job.Template, job.Data)
	if err != nil {
		return "", "", "", err
	}
	if job.Subject != "" {
		subject = job.Subject
	}
	return subject, text, html, nil
}
