package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ContactNotificationEmailData holds data for the contact form notification
// sent to the site operators.
type ContactNotificationEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
	SentAt  string
}

// RegistrationConfirmationEmailData holds data for the confirmation sent to
// an applicant after a successful event registration.
type RegistrationConfirmationEmailData struct {
	FullName   string
	Email      string
	EventTitle string
	EventDate  string
	StartTime  string
	VenueName  string
}

// EmailService defines the domain-level emails. All sends are best-effort:
// callers log failures and never propagate them.
type EmailService interface {
	SendContactNotification(ctx context.Context, data *ContactNotificationEmailData) error
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationConfirmationEmailData) error
}
