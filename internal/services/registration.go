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

type registrationService struct {
	eventRepo      domain.EventRepository
	regRepo        domain.RegistrationRepository
	emailService   domain.EmailService
	policy         domain.RegistrationPolicy
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration
}

// NewRegistrationService creates a RegistrationService. The email service is
// optional; when set, a confirmation is sent best-effort after each
// successful registration.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	regRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	policy domain.RegistrationPolicy,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:      eventRepo,
		regRepo:        regRepo,
		emailService:   emailService,
		policy:         policy,
		logger:         logger,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

// Register runs the eligibility gate in order; the first violation wins.
// Note: the capacity check is count-then-insert with no transaction, so two
// concurrent registrations near the last slot can both pass.
func (s *registrationService) Register(ctx context.Context, eventID string, applicant domain.Applicant) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := s.now()
	status := event.Status
	if s.policy.UseEffectiveStatus {
		status = event.EffectiveStatus(now)
	}
	if status == domain.EventStatusPast || status == domain.EventStatusCancelled {
		return nil, domain.ErrRegistrationClosed
	}

	if deadline, ok := event.DeadlineEnd(now.Location()); ok && now.After(deadline) {
		return nil, domain.ErrDeadlinePassed
	}

	email := strings.ToLower(strings.TrimSpace(applicant.Email))

	existing, err := s.regRepo.GetByEventAndEmail(ctx, eventID, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get registration: %w", err)
	}
	if existing != nil {
		if existing.Status != domain.RegistrationStatusCancelled {
			return nil, domain.ErrAlreadyRegistered
		}
		// Reactivate the cancelled registration in place instead of
		// inserting a second row for the same (event, email) pair.
		if !s.policy.AllowReactivationOverCapacity {
			if err := s.checkCapacity(ctx, event); err != nil {
				return nil, err
			}
		}
		existing.FullName = applicant.FullName
		if applicant.Phone != "" {
			existing.Phone = applicant.Phone
		}
		existing.Organization = applicant.Organization
		if applicant.Role != "" {
			existing.Role = applicant.Role
		}
		existing.OrganizationType = applicant.OrganizationType
		if applicant.Suggestions != "" {
			existing.Suggestions = applicant.Suggestions
		}
		existing.Status = domain.RegistrationStatusConfirmed
		existing.UpdatedAt = now
		if err := s.regRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("reactivate registration: %w", err)
		}
		s.sendConfirmation(ctx, event, existing)
		return existing, nil
	}

	if err := s.checkCapacity(ctx, event); err != nil {
		return nil, err
	}

	reg := &domain.Registration{
		EventID:          eventID,
		FullName:         applicant.FullName,
		Email:            email,
		Phone:            applicant.Phone,
		Organization:     applicant.Organization,
		Role:             applicant.Role,
		OrganizationType: applicant.OrganizationType,
		Suggestions:      applicant.Suggestions,
		Status:           domain.RegistrationStatusConfirmed,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.regRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}
	s.sendConfirmation(ctx, event, reg)
	return reg, nil
}

func (s *registrationService) checkCapacity(ctx context.Context, event *domain.Event) error {
	if event.MaxAttendees == nil {
		return nil
	}
	count, err := s.regRepo.CountConfirmed(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}
	if count >= *event.MaxAttendees {
		return domain.ErrFullyBooked
	}
	return nil
}

// sendConfirmation is best-effort; failures are logged and never returned.
func (s *registrationService) sendConfirmation(ctx context.Context, event *domain.Event, reg *domain.Registration) {
	if s.emailService == nil {
		return
	}
	data := &domain.RegistrationConfirmationEmailData{
		FullName:   reg.FullName,
		Email:      reg.Email,
		EventTitle: event.Title.En,
		EventDate:  event.Date,
		StartTime:  event.StartTime,
		VenueName:  event.Venue.Name.En,
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
		s.logger.Warn("registration confirmation email failed",
			"event_id", event.ID, "email", reg.Email, "err", err)
	}
}

func (s *registrationService) Check(ctx context.Context, eventID, email string) (*domain.RegistrationCheck, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reg, err := s.regRepo.GetByEventAndEmail(ctx, eventID, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.RegistrationCheck{Registered: false}, nil
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return &domain.RegistrationCheck{Registered: true, Status: reg.Status}, nil
}

func (s *registrationService) CountConfirmed(ctx context.Context, eventID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	count, err := s.regRepo.CountConfirmed(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}

func (s *registrationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.regRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

func (s *registrationService) UpdateStatus(ctx context.Context, id, status string) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !domain.ValidRegistrationStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrInvalidInput, status)
	}
	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	reg.Status = status
	reg.UpdatedAt = s.now()
	if err := s.regRepo.Update(ctx, reg); err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}
	return reg, nil
}

func (s *registrationService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.regRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}
