package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aihub/internal/domain"
)

type teamService struct {
	teamRepo       domain.TeamRepository
	contextTimeout time.Duration
}

// NewTeamService creates a TeamService.
func NewTeamService(teamRepo domain.TeamRepository, timeout time.Duration) domain.TeamService {
	return &teamService{teamRepo: teamRepo, contextTimeout: timeout}
}

func (s *teamService) List(ctx context.Context) ([]*domain.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	members, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return members, nil
}

func (s *teamService) GetByKey(ctx context.Context, memberKey string) (*domain.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	member, err := s.teamRepo.GetByKey(ctx, memberKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return member, nil
}
