package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergingtonactivities/internal/domain"
)

// fakeActivityRepo is an in-memory ActivityRepository for tests.
type fakeActivityRepo struct {
	catalog domain.Catalog
	err     error // if set, every operation returns this error
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{
		catalog: domain.Catalog{
			"Soccer Team": {
				Description:     "Join the school soccer team",
				Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
				MaxParticipants: 22,
				Participants:    []string{"liam@mergington.edu"},
			},
		},
	}
}

func (f *fakeActivityRepo) List(ctx context.Context) (domain.Catalog, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog, nil
}

func (f *fakeActivityRepo) AddParticipant(ctx context.Context, activityName, email string) error {
	if f.err != nil {
		return f.err
	}
	activity, ok := f.catalog[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, p := range activity.Participants {
		if p == email {
			return domain.ErrAlreadySignedUp
		}
	}
	activity.Participants = append(activity.Participants, email)
	return nil
}

func (f *fakeActivityRepo) RemoveParticipant(ctx context.Context, activityName, email string) error {
	if f.err != nil {
		return f.err
	}
	activity, ok := f.catalog[activityName]
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

func (f *fakeActivityRepo) Reset(ctx context.Context) error {
	return nil
}

func TestDirectoryService_ListActivities(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := NewDirectoryService(repo)

	catalog, err := svc.ListActivities(context.Background())
	require.NoError(t, err)
	require.Contains(t, catalog, "Soccer Team")
	assert.Equal(t, []string{"liam@mergington.edu"}, catalog["Soccer Team"].Participants)
}

func TestDirectoryService_ListActivities_RepoError(t *testing.T) {
	repo := newFakeActivityRepo()
	repo.err = errors.New("boom")
	svc := NewDirectoryService(repo)

	_, err := svc.ListActivities(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "list activities")
}

func TestDirectoryService_Signup(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := NewDirectoryService(repo)

	err := svc.Signup(context.Background(), "Soccer Team", "test@mergington.edu")
	require.NoError(t, err)
	assert.Contains(t, repo.catalog["Soccer Team"].Participants, "test@mergington.edu")
}

func TestDirectoryService_Signup_AlreadySignedUp(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := NewDirectoryService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, "Soccer Team", "dup@mergington.edu"))

	err := svc.Signup(ctx, "Soccer Team", "dup@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)
}

func TestDirectoryService_Signup_UnknownActivity(t *testing.T) {
	svc := NewDirectoryService(newFakeActivityRepo())

	err := svc.Signup(context.Background(), "Nonexistent Activity", "test@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestDirectoryService_Signup_RepoError(t *testing.T) {
	repo := newFakeActivityRepo()
	repo.err = errors.New("boom")
	svc := NewDirectoryService(repo)

	err := svc.Signup(context.Background(), "Soccer Team", "test@mergington.edu")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrActivityNotFound)
	assert.ErrorContains(t, err, "add participant")
}

func TestDirectoryService_Unregister(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := NewDirectoryService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, "Soccer Team", "leaving@mergington.edu"))
	require.NoError(t, svc.Unregister(ctx, "Soccer Team", "leaving@mergington.edu"))
	assert.NotContains(t, repo.catalog["Soccer Team"].Participants, "leaving@mergington.edu")
}

func TestDirectoryService_Unregister_NotSignedUp(t *testing.T) {
	svc := NewDirectoryService(newFakeActivityRepo())

	err := svc.Unregister(context.Background(), "Soccer Team", "ghost@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrNotSignedUp)
}

func TestDirectoryService_Unregister_UnknownActivity(t *testing.T) {
	svc := NewDirectoryService(newFakeActivityRepo())

	err := svc.Unregister(context.Background(), "Nonexistent Activity", "test@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestDirectoryService_SignupUnregisterSignup(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := NewDirectoryService(repo)
	ctx := context.Background()

	// The (activity, student) pair cycles NotSignedUp -> SignedUp -> NotSignedUp.
	require.NoError(t, svc.Signup(ctx, "Soccer Team", "cycle@mergington.edu"))
	require.NoError(t, svc.Unregister(ctx, "Soccer Team", "cycle@mergington.edu"))
	require.NoError(t, svc.Signup(ctx, "Soccer Team", "cycle@mergington.edu"))
	assert.Contains(t, repo.catalog["Soccer Team"].Participants, "cycle@mergington.edu")
}
