package gamify

import "time"

// UserStats holds the aggregate counters shown on the stats screen.
// All fields are monotonically non-decreasing except CurrentStreak,
// which resets when a day is skipped.
type UserStats struct {
	TotalPoints        int     `json:"total_points"`
	CurrentStreak      int     `json:"current_streak"`
	LongestStreak      int     `json:"longest_streak"`
	LastActiveDate     string  `json:"last_active_date,omitempty"` // local date, 2006-01-02
	TotalTimeSpent     int64   `json:"total_time_spent"`           // seconds
	ModulesCompleted   int     `json:"modules_completed"`
	ExercisesCompleted int     `json:"exercises_completed"`
	PerfectExercises   int     `json:"perfect_exercises"`
	AverageAttempts    float64 `json:"average_attempts"`
}

// ExerciseResult is the finalized outcome of one exercise. Repeating
// the same exercise overwrites the record wholesale (last write wins).
type ExerciseResult struct {
	ExerciseID     string    `json:"exercise_id"`
	Attempts       int       `json:"attempts"`
	HintsUsed      int       `json:"hints_used"`
	Completed      bool      `json:"completed"`
	CompletedAt    time.Time `json:"completed_at"`
	TimeToComplete int64     `json:"time_to_complete"` // seconds
	PointsEarned   int       `json:"points_earned"`
}

// ModuleStats tracks one module's lifecycle for the learner.
type ModuleStats struct {
	StartedAt       *time.Time                 `json:"started_at,omitempty"`
	CompletedAt     *time.Time                 `json:"completed_at,omitempty"`
	TimeSpent       int64                      `json:"time_spent"` // seconds
	PointsEarned    int                        `json:"points_earned"`
	ExerciseResults map[string]*ExerciseResult `json:"exercise_results,omitempty"`
}

// UnlockedBadge is a catalog badge plus the moment it was earned.
type UnlockedBadge struct {
	BadgeID    string    `json:"badge_id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// BadgeNotification is an unseen-badge marker for the UI layer.
// Newest notifications sit at the front of the list.
type BadgeNotification struct {
	BadgeID    string    `json:"badge_id"`
	UnlockedAt time.Time `json:"unlocked_at"`
	Seen       bool      `json:"seen"`
}

// Certificate is an immutable snapshot generated when a learner
// finishes a path and asks for one.
type Certificate struct {
	ID             string    `json:"id"`
	PathID         string    `json:"path_id"`
	PathName       string    `json:"path_name"`
	Username       string    `json:"username"`
	CompletedAt    time.Time `json:"completed_at"`
	TotalTimeSpent int64     `json:"total_time_spent"`
	TotalPoints    int       `json:"total_points"`
	BadgesEarned   []string  `json:"badges_earned"`
}

// State is the persisted shape of all gamification data, written as
// one JSON blob under the gamification storage key.
type State struct {
	Stats         UserStats                `json:"stats"`
	Badges        map[string]UnlockedBadge `json:"badges"`
	ModuleStats   map[int]*ModuleStats     `json:"module_stats"`
	Certificates  []Certificate            `json:"certificates"`
	Notifications []BadgeNotification      `json:"notifications"`
	Username      string                   `json:"username,omitempty"`
}

// newState returns an empty but fully allocated state.
func newState() State {
	return State{
		Badges:      make(map[string]UnlockedBadge),
		ModuleStats: make(map[int]*ModuleStats),
	}
}

// CompletionResult reports what a module completion changed.
type CompletionResult struct {
	AlreadyCompleted bool
	Points           int
	TimeSpent        int64
	NewBadges        []string
}

// ExerciseOutcome reports what recording an exercise changed.
type ExerciseOutcome struct {
	Points    int
	Replaced  bool // an earlier result for the same exercise was overwritten
	NewBadges []string
}
