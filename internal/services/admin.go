package services

import (
	"context"
	"fmt"
	"time"

	"aihub/internal/domain"
)

type adminService struct {
	contactRepo       domain.ContactRepository
	newsletterRepo    domain.NewsletterRepository
	eventRepo         domain.EventRepository
	regRepo           domain.RegistrationRepository
	userRepo          domain.UserRepository
	collaborationRepo domain.CollaborationRepository
	contextTimeout    time.Duration
}

// NewAdminService creates an AdminService that aggregates counts across all
// entity repositories for the dashboard.
func NewAdminService(
	contactRepo domain.ContactRepository,
	newsletterRepo domain.NewsletterRepository,
	eventRepo domain.EventRepository,
	regRepo domain.RegistrationRepository,
	userRepo domain.UserRepository,
	collaborationRepo domain.CollaborationRepository,
	timeout time.Duration,
) domain.AdminService {
	return &adminService{
		contactRepo:       contactRepo,
		newsletterRepo:    newsletterRepo,
		eventRepo:         eventRepo,
		regRepo:           regRepo,
		userRepo:          userRepo,
		collaborationRepo: collaborationRepo,
		contextTimeout:    timeout,
	}
}

func (s *adminService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	stats := &domain.DashboardStats{}
	var err error

	if stats.Contacts.Total, err = s.contactRepo.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count contacts: %w", err)
	}
	if stats.Contacts.Unread, err = s.contactRepo.CountUnread(ctx); err != nil {
		return nil, fmt.Errorf("count unread contacts: %w", err)
	}
	if stats.Subscribers, err = s.newsletterRepo.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}
	if stats.Events, err = s.eventRepo.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	if stats.Registrations, err = s.regRepo.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	if stats.Users, err = s.userRepo.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.Collaborations.Total, err = s.collaborationRepo.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count collaborations: %w", err)
	}
	if stats.Collaborations.Unread, err = s.collaborationRepo.CountUnread(ctx); err != nil {
		return nil, fmt.Errorf("count unread collaborations: %w", err)
	}
	return stats, nil
}
