package badges

import (
	"testing"
	"time"
)

func noonLocal() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
}

func TestCompletionLadder(t *testing.T) {
	unlocked := map[string]bool{}
	ladder := map[int]string{
		1:  "first_blood",
		3:  "getting_started",
		5:  "halfway_hero",
		8:  "deep_learner",
		11: "completionist",
	}

	for count := 1; count <= 12; count++ {
		snap := Snapshot{ModulesCompleted: count, Unlocked: unlocked}
		// Module 1 is not a milestone module, so only ladder badges fire.
		due := ForModuleCompletion(snap, 1, 1200, noonLocal())

		want, isMilestone := ladder[count]
		if isMilestone {
			if len(due) != 1 || due[0] != want {
				t.Errorf("count %d: due = %v, want [%s]", count, due, want)
			}
		} else if len(due) != 0 {
			t.Errorf("count %d: due = %v, want none", count, due)
		}

		for _, id := range due {
			unlocked[id] = true
		}
	}
}

func TestLadderFiresEachBadgeOnce(t *testing.T) {
	unlocked := map[string]bool{"first_blood": true}
	snap := Snapshot{ModulesCompleted: 2, Unlocked: unlocked}
	if due := ForModuleCompletion(snap, 1, 1200, noonLocal()); len(due) != 0 {
		t.Errorf("due = %v, want none (first_blood already unlocked)", due)
	}
}

func TestModuleMilestoneBadges(t *testing.T) {
	snap := Snapshot{ModulesCompleted: 2, Unlocked: map[string]bool{"first_blood": true, "getting_started": true}}
	due := ForModuleCompletion(snap, 3, 1200, noonLocal())
	if len(due) != 1 || due[0] != "memory_master" {
		t.Errorf("module 3 due = %v, want [memory_master]", due)
	}
}

func TestSpeedAndMarathon(t *testing.T) {
	base := Snapshot{ModulesCompleted: 2, Unlocked: map[string]bool{"first_blood": true, "getting_started": true}}

	due := ForModuleCompletion(base, 1, 599, noonLocal())
	if len(due) != 1 || due[0] != "speed_demon" {
		t.Errorf("599s due = %v, want [speed_demon]", due)
	}

	due = ForModuleCompletion(base, 1, 600, noonLocal())
	if len(due) != 0 {
		t.Errorf("600s due = %v, want none (limit is exclusive)", due)
	}

	due = ForModuleCompletion(base, 1, 7201, noonLocal())
	if len(due) != 1 || due[0] != "marathon_learner" {
		t.Errorf("7201s due = %v, want [marathon_learner]", due)
	}

	// Zero time spent means the module was never started; no speed badge.
	due = ForModuleCompletion(base, 1, 0, noonLocal())
	if len(due) != 0 {
		t.Errorf("0s due = %v, want none", due)
	}
}

func TestTimeOfDayBadges(t *testing.T) {
	base := Snapshot{ModulesCompleted: 2, Unlocked: map[string]bool{"first_blood": true, "getting_started": true}}

	tests := []struct {
		hour int
		want string
	}{
		{0, "night_owl"},
		{4, "night_owl"},
		{5, "early_bird"},
		{6, "early_bird"},
		{7, ""},
		{23, ""},
	}
	for _, tt := range tests {
		at := time.Date(2026, 3, 10, tt.hour, 30, 0, 0, time.Local)
		due := ForModuleCompletion(base, 1, 1200, at)
		switch {
		case tt.want == "" && len(due) != 0:
			t.Errorf("hour %d: due = %v, want none", tt.hour, due)
		case tt.want != "" && (len(due) != 1 || due[0] != tt.want):
			t.Errorf("hour %d: due = %v, want [%s]", tt.hour, due, tt.want)
		}
	}
}

func TestExerciseScans(t *testing.T) {
	snap := Snapshot{
		ExercisesCompleted: 25,
		PerfectExercises:   10,
		FirstTryExercises:  5,
		TotalPoints:        1000,
		Unlocked:           map[string]bool{},
	}
	due := ForExerciseCompletion(snap)
	want := map[string]bool{
		"exercise_enthusiast": true,
		"perfectionist":       true,
		"sharpshooter":        true,
		"point_collector":     true,
	}
	if len(due) != len(want) {
		t.Fatalf("due = %v, want %d badges", due, len(want))
	}
	for _, id := range due {
		if !want[id] {
			t.Errorf("unexpected badge %q", id)
		}
	}
}

func TestStreakThresholds(t *testing.T) {
	unlocked := map[string]bool{}
	for day := 1; day <= 30; day++ {
		due := ForStreak(Snapshot{CurrentStreak: day, Unlocked: unlocked})
		for _, id := range due {
			unlocked[id] = true
		}
	}
	for _, id := range []string{"warming_up", "week_one", "fortnight_focus", "monthly_devotion"} {
		if !unlocked[id] {
			t.Errorf("streak badge %q never unlocked", id)
		}
	}
}

func TestForPath(t *testing.T) {
	id, ok := ForPath("quick-wins", map[string]bool{})
	if !ok || id != "quick_learner" {
		t.Errorf("ForPath(quick-wins) = %q, %v", id, ok)
	}
	if _, ok := ForPath("quick-wins", map[string]bool{"quick_learner": true}); ok {
		t.Error("already-unlocked path badge should not fire")
	}
	if _, ok := ForPath("no-such-path", map[string]bool{}); ok {
		t.Error("unknown path should not fire")
	}
}

func TestCatalogCoversAllThresholdBadges(t *testing.T) {
	var tables [][]threshold
	tables = append(tables, completionThresholds, pointThresholds, streakThresholds,
		exerciseThresholds, perfectThresholds, firstTryThresholds)
	for _, table := range tables {
		for _, th := range table {
			if _, ok := Get(th.BadgeID); !ok {
				t.Errorf("threshold badge %q missing from catalog", th.BadgeID)
			}
		}
	}
	for _, id := range moduleBadges {
		if _, ok := Get(id); !ok {
			t.Errorf("module badge %q missing from catalog", id)
		}
	}
	for _, id := range pathBadges {
		if _, ok := Get(id); !ok {
			t.Errorf("path badge %q missing from catalog", id)
		}
	}
}
