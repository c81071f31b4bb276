package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aihub/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	now            func() time.Time
	contextTimeout time.Duration
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *eventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	now := s.now()
	for _, e := range events {
		e.Status = e.EffectiveStatus(now)
	}

	// The upcoming filter matches on stored status; drop events the
	// resolver has already moved past.
	if filter.UpcomingOnly {
		kept := events[:0]
		for _, e := range events {
			if e.Status != domain.EventStatusPast {
				kept = append(kept, e)
			}
		}
		events = kept
	}
	return events, nil
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	event.Status = event.EffectiveStatus(s.now())
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetBySlug(ctx, event.Slug); err == nil {
		return nil, domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check slug: %w", err)
	}

	now := s.now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.Status == "" {
		event.Status = domain.EventStatusDraft
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrSlugTaken
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	return s.eventRepo.GetByID(ctx, event.ID)
}

func (s *eventService) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// Re-check uniqueness only when the slug actually changed.
	if event.Slug != current.Slug {
		if _, err := s.eventRepo.GetBySlug(ctx, event.Slug); err == nil {
			return nil, domain.ErrSlugTaken
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("check slug: %w", err)
		}
	}

	if event.Status == "" {
		event.Status = current.Status
	}
	event.UpdatedAt = s.now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrSlugTaken
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	// Whole-collection replace: the full agenda is resubmitted each time.
	if err := s.eventRepo.ReplaceAgenda(ctx, event.ID, event.Agenda); err != nil {
		return nil, fmt.Errorf("replace agenda: %w", err)
	}
	return s.eventRepo.GetByID(ctx, event.ID)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) SeedIfEmpty(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var created []string
	for _, seed := range seedEvents() {
		if _, err := s.eventRepo.GetBySlug(ctx, seed.Slug); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			return created, fmt.Errorf("check seed %q: %w", seed.Slug, err)
		}
		now := s.now()
		seed.CreatedAt = now
		seed.UpdatedAt = now
		if err := s.eventRepo.Create(ctx, seed); err != nil {
			return created, fmt.Errorf("seed %q: %w", seed.Slug, err)
		}
		created = append(created, seed.ID)
	}
	return created, nil
}
