package store

import (
	"context"
	"errors"
	"time"
)

// Fixed storage keys. Each domain store serializes its whole state to
// JSON under one of these keys.
const (
	KeyProgress     = "progress"
	KeyGamification = "gamification"
	KeyQuiz         = "quiz"
	KeyReflections  = "reflections"
)

// AllStateKeys returns every fixed storage key.
func AllStateKeys() []string {
	return []string{KeyProgress, KeyGamification, KeyQuiz, KeyReflections}
}

// ErrNotFound is returned when no blob exists under the requested key.
var ErrNotFound = errors.New("state blob not found")

// StateRepo is the persistence port for store state. Domain services
// load their state at construction and rewrite the blob after every
// mutation. Tests substitute an in-memory implementation.
type StateRepo interface {
	// Load returns the raw JSON stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save writes the raw JSON under key, replacing any previous blob.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the blob under key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error

	// Keys returns the keys that currently hold a blob.
	Keys(ctx context.Context) ([]string, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Activity event kinds.
const (
	ActivityModuleStarted     = "module_started"
	ActivityModuleCompleted   = "module_completed"
	ActivityExerciseCompleted = "exercise_completed"
	ActivityQuizCompleted     = "quiz_completed"
	ActivityReviewCompleted   = "review_completed"
)

// ActivityEventData captures a single tracked learner action.
type ActivityEventData struct {
	Kind       string
	ModuleID   *int
	ExerciseID *string
	QuizID     *string
	Points     int
	Detail     string
}

// ActivityEventRecord is a stored activity event.
type ActivityEventRecord struct {
	Kind       string
	ModuleID   *int
	ExerciseID *string
	QuizID     *string
	Points     int
	Detail     string
	Sequence   int64
	Timestamp  time.Time
}

// BadgeEventData captures a badge unlock.
type BadgeEventData struct {
	BadgeID  string
	Rarity   string
	Category string
	Reason   string
}

// BadgeEventRecord is a stored badge unlock event.
type BadgeEventRecord struct {
	BadgeID   string
	Rarity    string
	Category  string
	Reason    string
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendActivityEvent records a learner action.
	AppendActivityEvent(ctx context.Context, data ActivityEventData) error

	// AppendBadgeEvent records a badge unlock.
	AppendBadgeEvent(ctx context.Context, data BadgeEventData) error

	// QueryActivityEvents returns activity events, newest first.
	QueryActivityEvents(ctx context.Context, opts QueryOpts) ([]ActivityEventRecord, error)

	// QueryBadgeEvents returns badge events, newest first.
	QueryBadgeEvents(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error)

	// BadgeCounts returns unlock counts grouped by rarity plus the total.
	BadgeCounts(ctx context.Context) (map[string]int, int, error)
}
