package memory

import (
	"context"
	"sync"

	"mergingtonactivities/internal/domain"
)

// activityRepository holds the catalog in memory for the lifetime of the
// process. A single RWMutex guards the whole catalog: the write lock is
// held across the existence/membership check and the mutation, so rosters
// never end up with duplicate emails under concurrent requests.
type activityRepository struct {
	mu      sync.RWMutex
	catalog domain.Catalog
	seed    domain.Catalog
}

// NewActivityRepository creates an ActivityRepository seeded with the given
// catalog. The seed is kept aside so Reset can restore it.
func NewActivityRepository(seed domain.Catalog) domain.ActivityRepository {
	return &activityRepository{
		catalog: cloneCatalog(seed),
		seed:    cloneCatalog(seed),
	}
}

func (r *activityRepository) List(ctx context.Context) (domain.Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneCatalog(r.catalog), nil
}

func (r *activityRepository) AddParticipant(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.catalog[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, p := range activity.Participants {
		if p == email {
			return domain.ErrAlreadySignedUp
		}
	}
	// MaxParticipants is not checked here; capacity has never been
	// enforced and signups past it are accepted.
	activity.Participants = append(activity.Participants, email)
	return nil
}

func (r *activityRepository) RemoveParticipant(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.catalog[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotSignedUp
}

func (r *activityRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalog = cloneCatalog(r.seed)
	return nil
}

// cloneCatalog deep-copies a catalog so callers never alias live rosters.
func cloneCatalog(src domain.Catalog) domain.Catalog {
	dst := make(domain.Catalog, len(src))
	for name, a := range src {
		participants := make([]string, len(a.Participants))
		copy(participants, a.Participants)
		dst[name] = &domain.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    participants,
		}
	}
	return dst
}
