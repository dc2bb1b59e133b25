package services

import (
	"context"
	"errors"
	"fmt"

	"mergingtonactivities/internal/domain"
	"mergingtonactivities/internal/observability"
)

type directoryService struct {
	repo domain.ActivityRepository
}

// NewDirectoryService creates a DirectoryService over the given repository.
func NewDirectoryService(repo domain.ActivityRepository) domain.DirectoryService {
	return &directoryService{repo: repo}
}

func (s *directoryService) ListActivities(ctx context.Context) (domain.Catalog, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return catalog, nil
}

func (s *directoryService) Signup(ctx context.Context, activityName, email string) error {
	if err := s.repo.AddParticipant(ctx, activityName, email); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) || errors.Is(err, domain.ErrAlreadySignedUp) {
			return err
		}
		return fmt.Errorf("add participant: %w", err)
	}
	observability.RecordSignup(activityName)
	return nil
}

func (s *directoryService) Unregister(ctx context.Context, activityName, email string) error {
	if err := s.repo.RemoveParticipant(ctx, activityName, email); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) || errors.Is(err, domain.ErrNotSignedUp) {
			return err
		}
		return fmt.Errorf("remove participant: %w", err)
	}
	observability.RecordUnregistration(activityName)
	return nil
}
