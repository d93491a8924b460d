package services

import (
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail/v2"

	"student-showcase-api/models"
)

// Notifier tells the applicant about a moderation decision.
type Notifier interface {
	NotifyDecision(sub *models.Submission) error
}

// SMTPConfig configures the decision mailer. Leaving Host or From empty
// disables notifications without erroring.
type SMTPConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string // e.g. "Student Showcase <no-reply@your.org>"
	SkipTLSVerify bool   // dev only
}

// EmailNotifier sends decision emails over SMTP with mandatory STARTTLS.
type EmailNotifier struct {
	cfg SMTPConfig
}

func NewEmailNotifier(cfg SMTPConfig) *EmailNotifier {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &EmailNotifier{cfg: cfg}
}

// Enabled reports whether SMTP is configured.
func (n *EmailNotifier) Enabled() bool {
	return n.cfg.Host != "" && n.cfg.From != ""
}

func (n *EmailNotifier) NotifyDecision(sub *models.Submission) error {
	if !n.Enabled() {
		return nil
	}

	var subject, body string
	switch sub.Status {
	case models.StatusApproved:
		subject = "Your portfolio submission was approved"
		body = fmt.Sprintf(
			"<p>Hi %s,</p><p>Your portfolio submission was approved. A pull request adding you to the showcase site will be opened shortly.</p>",
			sub.FirstName)
	case models.StatusRejected:
		subject = "Your portfolio submission was not accepted"
		body = fmt.Sprintf(
			"<p>Hi %s,</p><p>Your portfolio submission was not accepted.</p><p>Reviewer notes: %s</p><p>You are welcome to submit again.</p>",
			sub.FirstName, sub.ReviewNotes)
	default:
		return nil
	}

	m := mail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", sub.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := mail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         n.cfg.Host,
		InsecureSkipVerify: n.cfg.SkipTLSVerify,
	}

	return d.DialAndSend(m)
}
