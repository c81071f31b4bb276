package services

import (
	"context"
	"fmt"
	"log/slog"

	"aihub/internal/domain"
)

type emailService struct {
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	operators string
	logger    *slog.Logger
}

// NewEmailService returns an EmailService that renders named templates and
// sends through the given Mailer. operators is the address that receives
// contact form notifications.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, operators string, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, operators: operators, logger: logger}
}

// SendContactNotification sends the contact form notification to the site
// operators using the "contact_notification" template.
func (s *emailService) SendContactNotification(ctx context.Context, data *domain.ContactNotificationEmailData) error {
	if data == nil {
		return fmt.Errorf("contact notification data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("contact_notification", data)
	if err != nil {
		return fmt.Errorf("render contact_notification template: %w", err)
	}
	if err := s.mailer.Send(s.operators, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	s.logger.Info("contact notification sent", "to", s.operators, "from", data.Email)
	return nil
}

// SendRegistrationConfirmation sends the applicant their confirmation using
// the "registration_confirmation" template.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("registration_confirmation", data)
	if err != nil {
		return fmt.Errorf("render registration_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send registration confirmation: %w", err)
	}
	s.logger.Info("registration confirmation sent", "to", data.Email)
	return nil
}
