package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mileusna/useragent"

	"sitecms/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	if logger == nil {
		logger = slog.Default()
	}
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendSignInAlert notifies an admin that their account signed in to the dashboard.
func (s *emailService) SendSignInAlert(ctx context.Context, data *domain.SignInAlertEmailData) error {
	if data == nil {
		return fmt.Errorf("sign-in alert data is nil")
	}
	if data.Browser == "" && data.OS == "" {
		data.Browser, data.OS, data.Device = describeUserAgent(data.UserAgent)
	}
	subject, htmlBody, textBody, err := s.renderer.Render("sign_in_alert", data)
	if err != nil {
		return fmt.Errorf("failed to render sign_in_alert template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send sign-in alert: %w", err)
	}
	s.logger.InfoContext(ctx, "sign-in alert sent", "to", data.Email)
	return nil
}

func describeUserAgent(raw string) (browser, os, device string) {
	ua := useragent.Parse(raw)
	browser, os = ua.Name, ua.OS
	if browser == "" {
		browser = "Unknown"
	}
	if ua.Version != "" && browser != "Unknown" {
		browser += " " + ua.Version
	}
	if os == "" {
		os = "Unknown"
	}
	switch {
	case ua.Mobile:
		device = "mobile"
	case ua.Tablet:
		device = "tablet"
	case ua.Bot:
		device = "bot"
	default:
		device = "desktop"
	}
	return browser, os, device
}
