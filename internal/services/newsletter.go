package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aihub/internal/domain"
)

type newsletterService struct {
	subRepo        domain.NewsletterRepository
	contextTimeout time.Duration
}

// NewNewsletterService creates a NewsletterService.
func NewNewsletterService(subRepo domain.NewsletterRepository, timeout time.Duration) domain.NewsletterService {
	return &newsletterService{subRepo: subRepo, contextTimeout: timeout}
}

func (s *newsletterService) Subscribe(ctx context.Context, email, name string) (*domain.NewsletterSubscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))

	existing, err := s.subRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get subscriber: %w", err)
	}
	if existing != nil {
		if existing.IsActive {
			return nil, domain.ErrAlreadySubscribed
		}
		// Reactivate rather than inserting a duplicate row.
		existing.IsActive = true
		existing.UnsubscribedAt = nil
		if name != "" {
			existing.Name = name
		}
		if err := s.subRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("reactivate subscriber: %w", err)
		}
		return existing, nil
	}

	sub := &domain.NewsletterSubscriber{
		Email:        email,
		Name:         name,
		IsActive:     true,
		SubscribedAt: time.Now(),
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("create subscriber: %w", err)
	}
	return sub, nil
}

func (s *newsletterService) List(ctx context.Context) ([]*domain.NewsletterSubscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	subs, err := s.subRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return subs, nil
}

func (s *newsletterService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.subRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete subscriber: %w", err)
	}
	return nil
}
