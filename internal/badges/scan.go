package badges

import "time"

// Snapshot is the slice of learner state the threshold scans read.
// The gamification service assembles it; nothing here mutates state.
type Snapshot struct {
	ModulesCompleted   int
	TotalPoints        int
	CurrentStreak      int
	ExercisesCompleted int
	PerfectExercises   int
	FirstTryExercises  int
	Unlocked           map[string]bool
}

// scanThresholds returns the badge ids whose trigger value is reached
// and which are not yet unlocked.
func scanThresholds(tables []threshold, value int, unlocked map[string]bool, out []string) []string {
	for _, t := range tables {
		if value >= t.Value && !unlocked[t.BadgeID] {
			out = append(out, t.BadgeID)
		}
	}
	return out
}

// ForModuleCompletion returns badges newly earned by completing a
// module: the milestone badge, ladder and point thresholds, and the
// time-based awards for this completion.
func ForModuleCompletion(snap Snapshot, moduleID int, timeSpentSecs int64, completedAt time.Time) []string {
	var due []string

	if id, ok := moduleBadges[moduleID]; ok && !snap.Unlocked[id] {
		due = append(due, id)
	}

	due = scanThresholds(completionThresholds, snap.ModulesCompleted, snap.Unlocked, due)
	due = scanThresholds(pointThresholds, snap.TotalPoints, snap.Unlocked, due)

	if timeSpentSecs > 0 && timeSpentSecs < SpeedLimitSecs && !snap.Unlocked["speed_demon"] {
		due = append(due, "speed_demon")
	}
	if timeSpentSecs > MarathonFloorSecs && !snap.Unlocked["marathon_learner"] {
		due = append(due, "marathon_learner")
	}

	hour := completedAt.Hour()
	if hour >= 0 && hour < 5 && !snap.Unlocked["night_owl"] {
		due = append(due, "night_owl")
	}
	if hour >= 5 && hour < 7 && !snap.Unlocked["early_bird"] {
		due = append(due, "early_bird")
	}

	return due
}

// ForExerciseCompletion returns badges newly earned by an exercise
// result: count, perfect, first-try, and point thresholds.
func ForExerciseCompletion(snap Snapshot) []string {
	var due []string
	due = scanThresholds(exerciseThresholds, snap.ExercisesCompleted, snap.Unlocked, due)
	due = scanThresholds(perfectThresholds, snap.PerfectExercises, snap.Unlocked, due)
	due = scanThresholds(firstTryThresholds, snap.FirstTryExercises, snap.Unlocked, due)
	due = scanThresholds(pointThresholds, snap.TotalPoints, snap.Unlocked, due)
	return due
}

// ForStreak returns badges newly earned by reaching a streak length.
func ForStreak(snap Snapshot) []string {
	return scanThresholds(streakThresholds, snap.CurrentStreak, snap.Unlocked, nil)
}

// ForPath returns the badge for completing a learning path, if the
// path has one and it is still locked.
func ForPath(pathID string, unlocked map[string]bool) (string, bool) {
	id, ok := pathBadges[pathID]
	if !ok || unlocked[id] {
		return "", false
	}
	return id, true
}
