package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aihub/internal/domain"
)

type collaborationService struct {
	repo           domain.CollaborationRepository
	contextTimeout time.Duration
}

// NewCollaborationService creates a CollaborationService.
func NewCollaborationService(repo domain.CollaborationRepository, timeout time.Duration) domain.CollaborationService {
	return &collaborationService{repo: repo, contextTimeout: timeout}
}

func (s *collaborationService) Submit(ctx context.Context, req *domain.CollaborationRequest) (*domain.CollaborationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.CreatedAt = time.Now()
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create collaboration request: %w", err)
	}
	return req, nil
}

func (s *collaborationService) List(ctx context.Context) ([]*domain.CollaborationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reqs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collaboration requests: %w", err)
	}
	return reqs, nil
}

func (s *collaborationService) MarkRead(ctx context.Context, id string) (*domain.CollaborationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("mark collaboration read: %w", err)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *collaborationService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete collaboration request: %w", err)
	}
	return nil
}
