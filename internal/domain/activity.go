package domain

import (
	"context"
	"errors"
)

// Sentinel errors for roster operations.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student is already signed up")
	ErrNotSignedUp      = errors.New("student is not signed up for this activity")
)

// Activity is one catalog entry: an extracurricular activity and its roster.
// MaxParticipants is advisory only; no operation enforces it.
// swagger:model Activity
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Catalog maps an activity name to its record. Names are case-sensitive
// and may contain spaces.
type Catalog map[string]*Activity

// ActivityRepository defines storage operations for the activity catalog.
// AddParticipant and RemoveParticipant perform their existence and
// membership checks atomically with the mutation.
type ActivityRepository interface {
	// List returns a snapshot of the whole catalog. Mutating the result
	// does not affect the stored catalog.
	List(ctx context.Context) (Catalog, error)
	// AddParticipant appends email to the activity's roster. Returns
	// ErrActivityNotFound if the activity does not exist and
	// ErrAlreadySignedUp if email is already on the roster.
	AddParticipant(ctx context.Context, activityName, email string) error
	// RemoveParticipant removes one occurrence of email from the roster.
	// Returns ErrActivityNotFound if the activity does not exist and
	// ErrNotSignedUp if email is not on the roster.
	RemoveParticipant(ctx context.Context, activityName, email string) error
	// Reset restores every roster to its seeded state.
	Reset(ctx context.Context) error
}

// DirectoryService defines the student-facing directory operations.
type DirectoryService interface {
	ListActivities(ctx context.Context) (Catalog, error)
	// Signup adds the student to the activity's roster. Repeating a signup
	// is an error, not a no-op.
	Signup(ctx context.Context, activityName, email string) error
	// Unregister removes the student from the activity's roster. A student
	// who never signed up cannot unregister.
	Unregister(ctx context.Context, activityName, email string) error
}
