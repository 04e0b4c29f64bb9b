package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/talentbridge/job-portal/internal/core/domain"
	"github.com/talentbridge/job-portal/internal/core/ports"
)

// Config captures the SMTP settings for outbound mail.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Sender delivers application-status emails over SMTP.
type Sender struct {
	cfg Config
}

func NewSender(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

// Send delivers a single status notification. Safe for concurrent use by
// dispatcher workers; each call dials its own SMTP connection.
func (s *Sender) Send(ctx context.Context, n ports.StatusNotification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", n.Email)
	m.SetHeader("Subject", "Status Update for "+n.JobTitle)
	m.SetBody("text/html", statusBody(n))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send status mail: %w", err)
	}
	return nil
}

func statusBody(n ports.StatusNotification) string {
	var text string
	switch n.Status {
	case domain.ApplicationAccepted:
		text = "Congratulations! Your application has been accepted."
	case domain.ApplicationRejected:
		text = "We regret to inform you that your application has been rejected."
	default:
		text = "Your application is still under review."
	}
	return fmt.Sprintf("%s<br>Position: <b>%s</b><br>Status: <b>%s</b><br>%s",
		text, n.JobTitle, n.Status, n.CompanyName)
}
