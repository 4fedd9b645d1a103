package gamify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rnnlab/rnncourse/internal/points"
	"github.com/rnnlab/rnncourse/internal/store"
)

// mockEventRepo implements store.EventRepo for gamify tests.
type mockEventRepo struct {
	activity []store.ActivityEventData
	badges   []store.BadgeEventData
}

func (m *mockEventRepo) AppendActivityEvent(_ context.Context, data store.ActivityEventData) error {
	m.activity = append(m.activity, data)
	return nil
}
func (m *mockEventRepo) AppendBadgeEvent(_ context.Context, data store.BadgeEventData) error {
	m.badges = append(m.badges, data)
	return nil
}
func (m *mockEventRepo) QueryActivityEvents(_ context.Context, _ store.QueryOpts) ([]store.ActivityEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryBadgeEvents(_ context.Context, _ store.QueryOpts) ([]store.BadgeEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) BadgeCounts(_ context.Context) (map[string]int, int, error) {
	return nil, 0, nil
}

// day returns noon local time n days after a fixed base date. Noon
// keeps the time-of-day badges quiet unless a test wants them.
func day(n int) time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local).AddDate(0, 0, n)
}

func newTestService(t *testing.T) (*Service, *store.MemoryStateRepo, *mockEventRepo) {
	t.Helper()
	stateRepo := store.NewMemoryStateRepo()
	events := &mockEventRepo{}
	return NewService(context.Background(), stateRepo, events), stateRepo, events
}

func TestCompleteModuleAwardsPoints(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()

	if err := svc.StartModule(ctx, 3, day(0)); err != nil {
		t.Fatal(err)
	}
	res, err := svc.CompleteModule(ctx, 3, day(0).Add(20*time.Minute))
	if err != nil {
		t.Fatal(err)
	}

	want := points.CalculateModulePoints(3)
	if res.Points != want {
		t.Errorf("points = %d, want %d", res.Points, want)
	}
	if res.TimeSpent != 1200 {
		t.Errorf("time spent = %d, want 1200", res.TimeSpent)
	}

	stats := svc.Stats()
	if stats.ModulesCompleted != 1 {
		t.Errorf("modules completed = %d, want 1", stats.ModulesCompleted)
	}
	// Module points plus the daily streak award for the first active day.
	if stats.TotalPoints != want+points.StreakDaily {
		t.Errorf("total points = %d, want %d", stats.TotalPoints, want+points.StreakDaily)
	}
	if stats.TotalTimeSpent != 1200 {
		t.Errorf("total time = %d, want 1200", stats.TotalTimeSpent)
	}

	// memory_master (module 3) and first_blood both unlock here.
	if !svc.HasBadge("memory_master") || !svc.HasBadge("first_blood") {
		t.Errorf("badges after module 3: %v", svc.UnlockedBadges())
	}
	if len(events.badges) < 2 {
		t.Errorf("badge events = %d, want at least 2", len(events.badges))
	}
}

func TestRecompletionIsNoOp(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CompleteModule(ctx, 0, day(0)); err != nil {
		t.Fatal(err)
	}
	before := svc.Stats().TotalPoints

	res, err := svc.CompleteModule(ctx, 0, day(0).Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !res.AlreadyCompleted {
		t.Error("expected AlreadyCompleted")
	}
	if got := svc.Stats().TotalPoints; got != before {
		t.Errorf("total points changed on recompletion: %d -> %d", before, got)
	}
	if got := svc.Stats().ModulesCompleted; got != 1 {
		t.Errorf("modules completed = %d, want 1", got)
	}
}

func TestCompletionLadderScenario(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	ladder := map[int]string{
		1:  "first_blood",
		3:  "getting_started",
		5:  "halfway_hero",
		8:  "deep_learner",
		11: "completionist",
	}

	for i := 0; i < 11; i++ {
		res, err := svc.CompleteModule(ctx, i, day(0))
		if err != nil {
			t.Fatal(err)
		}
		want, milestone := ladder[i+1]
		if milestone {
			found := false
			for _, id := range res.NewBadges {
				if id == want {
					found = true
				}
			}
			if !found {
				t.Errorf("completion %d: badges %v missing %s", i+1, res.NewBadges, want)
			}
		}
	}

	// Each ladder badge exactly once in the unlocked map.
	for _, id := range ladder {
		if !svc.HasBadge(id) {
			t.Errorf("ladder badge %s not unlocked", id)
		}
	}
	seen := map[string]int{}
	for _, n := range svc.Notifications() {
		seen[n.BadgeID]++
	}
	for _, id := range ladder {
		if seen[id] != 1 {
			t.Errorf("badge %s has %d notifications, want 1", id, seen[id])
		}
	}
}

func TestExerciseAggregates(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	// Perfect first try.
	out, err := svc.RecordExerciseResult(ctx, 0, "ex-0-1", 1, 0, 90, day(0))
	if err != nil {
		t.Fatal(err)
	}
	if out.Points != points.ExerciseBase+points.PerfectBonus+points.FirstTryBonus {
		t.Errorf("points = %d", out.Points)
	}

	// Three attempts with hints.
	if _, err := svc.RecordExerciseResult(ctx, 0, "ex-0-2", 3, 2, 240, day(0)); err != nil {
		t.Fatal(err)
	}

	stats := svc.Stats()
	if stats.ExercisesCompleted != 2 {
		t.Errorf("exercises = %d, want 2", stats.ExercisesCompleted)
	}
	if stats.PerfectExercises != 1 {
		t.Errorf("perfect = %d, want 1", stats.PerfectExercises)
	}
	if stats.AverageAttempts != 2 {
		t.Errorf("average attempts = %v, want 2", stats.AverageAttempts)
	}
}

func TestExerciseOverwriteAdjustsByDelta(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.RecordExerciseResult(ctx, 0, "ex-0-1", 4, 2, 300, day(0)); err != nil {
		t.Fatal(err)
	}
	firstPoints := svc.Stats().TotalPoints

	// Redo the same exercise perfectly.
	out, err := svc.RecordExerciseResult(ctx, 0, "ex-0-1", 1, 0, 60, day(0))
	if err != nil {
		t.Fatal(err)
	}
	if !out.Replaced {
		t.Error("expected Replaced")
	}

	stats := svc.Stats()
	if stats.ExercisesCompleted != 1 {
		t.Errorf("exercises = %d, want 1 (overwrite, not append)", stats.ExercisesCompleted)
	}
	if stats.PerfectExercises != 1 {
		t.Errorf("perfect = %d, want 1", stats.PerfectExercises)
	}
	if stats.AverageAttempts != 1 {
		t.Errorf("average attempts = %v, want 1 after overwrite", stats.AverageAttempts)
	}
	delta := points.CalculateExercisePoints(0, 1) - points.CalculateExercisePoints(2, 4)
	if stats.TotalPoints != firstPoints+delta {
		t.Errorf("total points = %d, want %d", stats.TotalPoints, firstPoints+delta)
	}

	ms, _ := svc.ModuleStatsFor(0)
	if r := ms.ExerciseResults["ex-0-1"]; r.Attempts != 1 || r.HintsUsed != 0 {
		t.Errorf("stored result not overwritten: %+v", r)
	}
}

func TestFirstTryBadgeScansAllResults(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	// Four first-try solves across two modules, then a retried one,
	// then the fifth first-try which should trip sharpshooter.
	for i, ex := range []string{"a", "b", "c", "d"} {
		mod := i % 2
		if _, err := svc.RecordExerciseResult(ctx, mod, ex, 1, 1, 60, day(0)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.RecordExerciseResult(ctx, 2, "e", 3, 1, 60, day(0)); err != nil {
		t.Fatal(err)
	}
	if svc.HasBadge("sharpshooter") {
		t.Fatal("sharpshooter too early")
	}

	out, err := svc.RecordExerciseResult(ctx, 2, "f", 1, 1, 60, day(0))
	if err != nil {
		t.Fatal(err)
	}
	if !svc.HasBadge("sharpshooter") {
		t.Errorf("sharpshooter not unlocked; new badges %v", out.NewBadges)
	}
}

func TestStreakScenario(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.UpdateStreak(ctx, day(i)); err != nil {
			t.Fatal(err)
		}
	}
	stats := svc.Stats()
	if stats.CurrentStreak != 3 {
		t.Errorf("streak = %d, want 3", stats.CurrentStreak)
	}
	if !svc.HasBadge("warming_up") {
		t.Error("warming_up not unlocked at 3 days")
	}

	// Same day again: no change, no extra points.
	before := svc.Stats().TotalPoints
	if _, err := svc.UpdateStreak(ctx, day(2).Add(2*time.Hour)); err != nil {
		t.Fatal(err)
	}
	if got := svc.Stats(); got.CurrentStreak != 3 || got.TotalPoints != before {
		t.Errorf("same-day update changed state: %+v", got)
	}

	// Skip a day: reset to 1, longest stays 3.
	if _, err := svc.UpdateStreak(ctx, day(4)); err != nil {
		t.Fatal(err)
	}
	stats = svc.Stats()
	if stats.CurrentStreak != 1 {
		t.Errorf("streak after gap = %d, want 1", stats.CurrentStreak)
	}
	if stats.LongestStreak != 3 {
		t.Errorf("longest = %d, want 3", stats.LongestStreak)
	}
}

func TestStreakWeeklyBonus(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	total := 0
	for i := 0; i < 7; i++ {
		if _, err := svc.UpdateStreak(ctx, day(i)); err != nil {
			t.Fatal(err)
		}
		total += points.StreakDaily
	}
	total += points.StreakWeekBonus
	if got := svc.Stats().TotalPoints; got != total {
		t.Errorf("points after 7 days = %d, want %d", got, total)
	}
	if !svc.HasBadge("week_one") {
		t.Error("week_one not unlocked")
	}
}

func TestLongestStreakMonotonic(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	longest := 0
	// Irregular activity pattern over a month.
	for _, n := range []int{0, 1, 2, 5, 6, 7, 8, 9, 15, 16} {
		if _, err := svc.UpdateStreak(ctx, day(n)); err != nil {
			t.Fatal(err)
		}
		if got := svc.Stats().LongestStreak; got < longest {
			t.Fatalf("longest streak decreased: %d -> %d", longest, got)
		} else {
			longest = got
		}
	}
	if longest != 5 {
		t.Errorf("longest = %d, want 5 (days 5-9)", longest)
	}
}

func TestUnlockBadgeIdempotent(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()

	ub, err := svc.UnlockBadge(ctx, "night_owl", day(0))
	if err != nil || ub == nil {
		t.Fatalf("first unlock: %v, %v", ub, err)
	}
	ub, err = svc.UnlockBadge(ctx, "night_owl", day(1))
	if err != nil {
		t.Fatal(err)
	}
	if ub != nil {
		t.Error("second unlock should be a no-op")
	}

	count := 0
	for _, n := range svc.Notifications() {
		if n.BadgeID == "night_owl" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("notifications = %d, want exactly 1", count)
	}
	if len(events.badges) != 1 {
		t.Errorf("badge events = %d, want 1", len(events.badges))
	}
}

func TestUnlockUnknownBadge(t *testing.T) {
	svc, _, _ := newTestService(t)
	ub, err := svc.UnlockBadge(context.Background(), "no_such_badge", day(0))
	if err != nil || ub != nil {
		t.Errorf("unknown badge: %v, %v, want nil no-op", ub, err)
	}
}

func TestPathCompletion(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	completed := map[int]bool{0: true, 1: true, 2: true, 4: true, 8: true}
	newBadges, err := svc.CheckPathCompletion(ctx, completed, day(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(newBadges) != 1 || newBadges[0] != "quick_learner" {
		t.Errorf("new badges = %v, want [quick_learner]", newBadges)
	}
	if svc.HasBadge("full_practitioner") {
		t.Error("full_practitioner should not unlock from a partial set")
	}

	// Idempotent.
	newBadges, err = svc.CheckPathCompletion(ctx, completed, day(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(newBadges) != 0 {
		t.Errorf("second check = %v, want none", newBadges)
	}
}

func TestGenerateCertificate(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CompleteModule(ctx, 0, day(0)); err != nil {
		t.Fatal(err)
	}
	cert, err := svc.GenerateCertificate(ctx, "quick-wins", "Quick Wins", day(0))
	if err != nil {
		t.Fatal(err)
	}
	if cert.ID == "" {
		t.Error("certificate id empty")
	}
	if cert.Username != DefaultUsername {
		t.Errorf("username = %q, want default", cert.Username)
	}
	if cert.TotalPoints != svc.Stats().TotalPoints {
		t.Errorf("cert points = %d, want %d", cert.TotalPoints, svc.Stats().TotalPoints)
	}
	if len(cert.BadgesEarned) == 0 {
		t.Error("cert badge snapshot empty")
	}

	if err := svc.SetUsername(ctx, "Ada"); err != nil {
		t.Fatal(err)
	}
	cert2, err := svc.GenerateCertificate(ctx, "quick-wins", "Quick Wins", day(1))
	if err != nil {
		t.Fatal(err)
	}
	if cert2.Username != "Ada" {
		t.Errorf("username = %q, want Ada", cert2.Username)
	}
	if len(svc.Certificates()) != 2 {
		t.Errorf("certificates = %d, want 2", len(svc.Certificates()))
	}
}

func TestStateRoundTrip(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.StartModule(ctx, 0, day(0)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CompleteModule(ctx, 0, day(0).Add(15*time.Minute)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordExerciseResult(ctx, 0, "ex-0-1", 1, 0, 90, day(0)); err != nil {
		t.Fatal(err)
	}

	svc2 := NewService(ctx, repo, nil)
	if svc2.Stats() != svc.Stats() {
		t.Errorf("stats differ after reload:\n  %+v\n  %+v", svc2.Stats(), svc.Stats())
	}
	if len(svc2.UnlockedBadges()) != len(svc.UnlockedBadges()) {
		t.Errorf("badges differ after reload")
	}
	ms, ok := svc2.ModuleStatsFor(0)
	if !ok || ms.CompletedAt == nil || len(ms.ExerciseResults) != 1 {
		t.Errorf("module stats lost in round trip: %+v", ms)
	}
}

func TestMalformedBlobFallsBackToEmpty(t *testing.T) {
	repo := store.NewMemoryStateRepo()
	ctx := context.Background()
	if err := repo.Save(ctx, store.KeyGamification, []byte(`{"stats": [1,2,3]}`)); err != nil {
		t.Fatal(err)
	}
	svc := NewService(ctx, repo, nil)
	if svc.Stats().TotalPoints != 0 {
		t.Error("expected fresh state after malformed blob")
	}
}

func TestNotificationsMarkSeen(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.UnlockBadge(ctx, "night_owl", day(0)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UnlockBadge(ctx, "early_bird", day(0)); err != nil {
		t.Fatal(err)
	}

	// Newest first.
	ns := svc.Notifications()
	if len(ns) != 2 || ns[0].BadgeID != "early_bird" {
		t.Errorf("notifications = %+v", ns)
	}
	if ns[0].Seen || ns[1].Seen {
		t.Error("fresh notifications should be unseen")
	}

	if err := svc.MarkNotificationsSeen(ctx); err != nil {
		t.Fatal(err)
	}
	raw, err := repo.Load(ctx, store.KeyGamification)
	if err != nil {
		t.Fatal(err)
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		t.Fatal(err)
	}
	for _, n := range st.Notifications {
		if !n.Seen {
			t.Errorf("persisted notification %s still unseen", n.BadgeID)
		}
	}
}
