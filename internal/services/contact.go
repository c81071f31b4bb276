package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"aihub/internal/domain"
)

type contactService struct {
	contactRepo    domain.ContactRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewContactService creates a ContactService. The email service is optional;
// when set, operators get a best-effort notification for each submission.
func NewContactService(
	contactRepo domain.ContactRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ContactService {
	return &contactService{
		contactRepo:    contactRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *contactService) Submit(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	msg.Email = strings.TrimSpace(strings.ToLower(msg.Email))
	msg.CreatedAt = time.Now()
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	// Notification comes after the write and never blocks it.
	if s.emailService != nil {
		data := &domain.ContactNotificationEmailData{
			Name:    msg.Name,
			Email:   msg.Email,
			Subject: msg.Subject,
			Message: msg.Message,
			SentAt:  msg.CreatedAt.Format(time.RFC3339),
		}
		if err := s.emailService.SendContactNotification(ctx, data); err != nil {
			s.logger.Warn("contact notification email failed", "contact_id", msg.ID, "err", err)
		}
	}
	return msg, nil
}

func (s *contactService) List(ctx context.Context, unreadOnly bool) ([]*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	msgs, err := s.contactRepo.List(ctx, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return msgs, nil
}

func (s *contactService) MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.contactRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("mark contact read: %w", err)
	}
	return s.contactRepo.GetByID(ctx, id)
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.contactRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete contact message: %w", err)
	}
	return nil
}
