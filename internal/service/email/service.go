package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"kakeibo-dashboard/internal/config"
)

type Service interface {
	SendNotificationEmail(ctx context.Context, toEmail, fullName, title, message string) error
}

type service struct {
	client *resend.Client
	config *config.Config
	tmpl   *template.Template
}

var notificationTemplate = template.Must(template.New("notification").Parse(`
<div style="font-family: sans-serif; max-width: 480px;">
  <h2>{{.Title}}</h2>
  <p>{{.Name}} 様</p>
  <p>{{.Message}}</p>
  <p style="color: #888; font-size: 12px;">Kakeibo Dashboard からの自動送信メールです。</p>
</div>`))

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
		tmpl:   notificationTemplate,
	}
}

func (s *service) SendNotificationEmail(ctx context.Context, toEmail, fullName, title, message string) error {
	data := struct {
		Title   string
		Name    string
		Message string
	}{
		Title:   title,
		Name:    fullName,
		Message: message,
	}

	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Kakeibo Dashboard <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: title,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
