package gamify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rnnlab/rnncourse/internal/badges"
	"github.com/rnnlab/rnncourse/internal/course"
	"github.com/rnnlab/rnncourse/internal/points"
	"github.com/rnnlab/rnncourse/internal/store"
)

// DefaultUsername appears on certificates when no name is configured.
const DefaultUsername = "Anonymous Learner"

// Service is the gamification rules engine. It owns points, streaks,
// badges, per-module stats, certificates, and notifications, and
// rewrites its state blob after every mutating operation.
//
// Completion membership is owned by the progress service; callers pass
// the completed set into CheckPathCompletion rather than this service
// tracking it.
type Service struct {
	state State

	stateRepo store.StateRepo
	eventRepo store.EventRepo
}

// NewService creates a gamification service, loading state from the
// repo. A missing or malformed blob yields a fresh empty state.
func NewService(ctx context.Context, stateRepo store.StateRepo, eventRepo store.EventRepo) *Service {
	s := &Service{
		state:     newState(),
		stateRepo: stateRepo,
		eventRepo: eventRepo,
	}

	if stateRepo == nil {
		return s
	}

	raw, err := stateRepo.Load(ctx, store.KeyGamification)
	if err != nil {
		return s
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return s
	}
	if st.Badges == nil {
		st.Badges = make(map[string]UnlockedBadge)
	}
	if st.ModuleStats == nil {
		st.ModuleStats = make(map[int]*ModuleStats)
	}
	s.state = st
	return s
}

// Stats returns a copy of the aggregate counters.
func (s *Service) Stats() UserStats {
	return s.state.Stats
}

// Username returns the configured certificate name, empty if unset.
func (s *Service) Username() string {
	return s.state.Username
}

// SetUsername records the name used on future certificates.
func (s *Service) SetUsername(ctx context.Context, name string) error {
	s.state.Username = name
	return s.save(ctx)
}

// ModuleStatsFor returns the stats entry for a module, if one exists.
func (s *Service) ModuleStatsFor(moduleID int) (ModuleStats, bool) {
	ms, ok := s.state.ModuleStats[moduleID]
	if !ok {
		return ModuleStats{}, false
	}
	return *ms, true
}

// UnlockedBadges returns every unlocked badge sorted by unlock time,
// oldest first.
func (s *Service) UnlockedBadges() []UnlockedBadge {
	out := make([]UnlockedBadge, 0, len(s.state.Badges))
	for _, b := range s.state.Badges {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UnlockedAt.Equal(out[j].UnlockedAt) {
			return out[i].UnlockedAt.Before(out[j].UnlockedAt)
		}
		return out[i].BadgeID < out[j].BadgeID
	})
	return out
}

// HasBadge reports whether a badge is unlocked.
func (s *Service) HasBadge(id string) bool {
	_, ok := s.state.Badges[id]
	return ok
}

// Certificates returns all generated certificates, oldest first.
func (s *Service) Certificates() []Certificate {
	return s.state.Certificates
}

// Notifications returns the notification list, newest first.
func (s *Service) Notifications() []BadgeNotification {
	return s.state.Notifications
}

// MarkNotificationsSeen flags every notification as seen.
func (s *Service) MarkNotificationsSeen(ctx context.Context) error {
	for i := range s.state.Notifications {
		s.state.Notifications[i].Seen = true
	}
	return s.save(ctx)
}

// StartModule records that the learner opened a module. The first
// start stamps StartedAt; later starts are no-ops for the stats entry.
// Any start counts as activity for the streak.
func (s *Service) StartModule(ctx context.Context, moduleID int, now time.Time) error {
	ms, created := s.ensureModuleStats(moduleID)
	if created || ms.StartedAt == nil {
		t := now
		ms.StartedAt = &t
	}

	s.appendActivity(ctx, store.ActivityEventData{
		Kind:     store.ActivityModuleStarted,
		ModuleID: &moduleID,
	})

	if _, err := s.UpdateStreak(ctx, now); err != nil {
		return err
	}
	return s.save(ctx)
}

// CompleteModule finalizes a module: stamps completion, awards
// difficulty-weighted points, accumulates time spent, and runs the
// badge scans. Completing an already-completed module is a no-op so
// replayed events can never double-count points.
func (s *Service) CompleteModule(ctx context.Context, moduleID int, now time.Time) (*CompletionResult, error) {
	ms, _ := s.ensureModuleStats(moduleID)
	if ms.CompletedAt != nil {
		return &CompletionResult{AlreadyCompleted: true}, nil
	}

	modulePoints := points.CalculateModulePoints(moduleID)

	timeSpent := ms.TimeSpent
	if ms.StartedAt != nil {
		timeSpent = int64(now.Sub(*ms.StartedAt) / time.Second)
		if timeSpent < 0 {
			timeSpent = 0
		}
	}

	t := now
	ms.CompletedAt = &t
	ms.PointsEarned = modulePoints
	ms.TimeSpent = timeSpent

	s.state.Stats.ModulesCompleted++
	s.state.Stats.TotalPoints += modulePoints
	s.state.Stats.TotalTimeSpent += timeSpent

	snap := s.snapshot()
	newBadges := badges.ForModuleCompletion(snap, moduleID, timeSpent, now.Local())
	for _, id := range newBadges {
		s.unlock(ctx, id, now)
	}

	s.appendActivity(ctx, store.ActivityEventData{
		Kind:     store.ActivityModuleCompleted,
		ModuleID: &moduleID,
		Points:   modulePoints,
	})

	streakBadges, err := s.UpdateStreak(ctx, now)
	if err != nil {
		return nil, err
	}
	newBadges = append(newBadges, streakBadges...)

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &CompletionResult{
		Points:    modulePoints,
		TimeSpent: timeSpent,
		NewBadges: newBadges,
	}, nil
}

// RecordExerciseResult finalizes one exercise attempt series. A repeat
// of the same exercise overwrites the stored result wholesale and
// adjusts the aggregates by the difference, so totals stay consistent
// instead of double-counting.
func (s *Service) RecordExerciseResult(ctx context.Context, moduleID int, exerciseID string, attempts, hintsUsed int, timeToComplete int64, now time.Time) (*ExerciseOutcome, error) {
	ms, _ := s.ensureModuleStats(moduleID)
	if ms.ExerciseResults == nil {
		ms.ExerciseResults = make(map[string]*ExerciseResult)
	}

	exercisePoints := points.CalculateExercisePoints(hintsUsed, attempts)
	result := &ExerciseResult{
		ExerciseID:     exerciseID,
		Attempts:       attempts,
		HintsUsed:      hintsUsed,
		Completed:      true,
		CompletedAt:    now,
		TimeToComplete: timeToComplete,
		PointsEarned:   exercisePoints,
	}

	prev, replaced := ms.ExerciseResults[exerciseID]
	ms.ExerciseResults[exerciseID] = result

	stats := &s.state.Stats
	if replaced {
		stats.TotalPoints += exercisePoints - prev.PointsEarned
		if prev.HintsUsed == 0 {
			stats.PerfectExercises--
		}
	} else {
		stats.ExercisesCompleted++
		stats.TotalPoints += exercisePoints
	}
	if hintsUsed == 0 {
		stats.PerfectExercises++
	}
	stats.AverageAttempts = s.averageAttempts()

	snap := s.snapshot()
	newBadges := badges.ForExerciseCompletion(snap)
	for _, id := range newBadges {
		s.unlock(ctx, id, now)
	}

	s.appendActivity(ctx, store.ActivityEventData{
		Kind:       store.ActivityExerciseCompleted,
		ModuleID:   &moduleID,
		ExerciseID: &exerciseID,
		Points:     exercisePoints,
	})

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &ExerciseOutcome{
		Points:    exercisePoints,
		Replaced:  replaced,
		NewBadges: newBadges,
	}, nil
}

// CheckPathCompletion unlocks path badges for every statically defined
// path whose modules are all present in the completed set. Unlocking
// is idempotent; finished paths checked again do nothing.
func (s *Service) CheckPathCompletion(ctx context.Context, completed map[int]bool, now time.Time) ([]string, error) {
	var newBadges []string
	for _, p := range course.AllPaths() {
		done := true
		for _, id := range p.ModuleIDs {
			if !completed[id] {
				done = false
				break
			}
		}
		if !done {
			continue
		}
		if id, ok := badges.ForPath(p.ID, s.unlockedSet()); ok {
			s.unlock(ctx, id, now)
			newBadges = append(newBadges, id)
		}
	}
	if len(newBadges) == 0 {
		return nil, nil
	}
	return newBadges, s.save(ctx)
}

// UpdateStreak advances the daily streak. The comparison is true
// calendar-day adjacency in the local zone, so activity at 23:59 and
// 00:05 the next day counts as consecutive. Repeat calls on the same
// day return early without awarding points.
func (s *Service) UpdateStreak(ctx context.Context, now time.Time) ([]string, error) {
	stats := &s.state.Stats
	today := localDate(now)

	newStreak := 1
	if stats.LastActiveDate != "" {
		days, ok := daysBetween(stats.LastActiveDate, now)
		if ok {
			switch {
			case days == 0:
				return nil, nil
			case days == 1:
				newStreak = stats.CurrentStreak + 1
			}
		}
	}

	stats.CurrentStreak = newStreak
	if newStreak > stats.LongestStreak {
		stats.LongestStreak = newStreak
	}
	stats.LastActiveDate = today

	stats.TotalPoints += points.StreakDaily
	if newStreak%7 == 0 {
		stats.TotalPoints += points.StreakWeekBonus
	}

	newBadges := badges.ForStreak(s.snapshot())
	for _, id := range newBadges {
		s.unlock(ctx, id, now)
	}
	return newBadges, s.save(ctx)
}

// UnlockBadge unlocks a badge by id. Already-unlocked and unknown ids
// are no-ops; this is the single idempotency guard for every scan
// call site. Returns the unlock record, or nil if nothing changed.
func (s *Service) UnlockBadge(ctx context.Context, badgeID string, now time.Time) (*UnlockedBadge, error) {
	ub := s.unlock(ctx, badgeID, now)
	if ub == nil {
		return nil, nil
	}
	return ub, s.save(ctx)
}

// unlock performs the in-memory unlock without persisting.
func (s *Service) unlock(ctx context.Context, badgeID string, now time.Time) *UnlockedBadge {
	if _, ok := s.state.Badges[badgeID]; ok {
		return nil
	}
	b, ok := badges.Get(badgeID)
	if !ok {
		return nil
	}

	ub := UnlockedBadge{BadgeID: badgeID, UnlockedAt: now}
	s.state.Badges[badgeID] = ub
	s.state.Notifications = append([]BadgeNotification{{
		BadgeID:    badgeID,
		UnlockedAt: now,
	}}, s.state.Notifications...)

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendBadgeEvent(ctx, store.BadgeEventData{
			BadgeID:  b.ID,
			Rarity:   string(b.Rarity),
			Category: string(b.Category),
			Reason:   b.Requirement,
		})
	}
	return &ub
}

// GenerateCertificate snapshots the learner's standing into a new
// immutable certificate for a finished path.
func (s *Service) GenerateCertificate(ctx context.Context, pathID, pathName string, now time.Time) (*Certificate, error) {
	username := s.state.Username
	if username == "" {
		username = DefaultUsername
	}

	earned := make([]string, 0, len(s.state.Badges))
	for id := range s.state.Badges {
		earned = append(earned, id)
	}
	sort.Strings(earned)

	cert := Certificate{
		ID:             uuid.NewString(),
		PathID:         pathID,
		PathName:       pathName,
		Username:       username,
		CompletedAt:    now,
		TotalTimeSpent: s.state.Stats.TotalTimeSpent,
		TotalPoints:    s.state.Stats.TotalPoints,
		BadgesEarned:   earned,
	}
	s.state.Certificates = append(s.state.Certificates, cert)

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &cert, nil
}

// Reset discards all gamification data, both in memory and in the store.
func (s *Service) Reset(ctx context.Context) error {
	s.state = newState()
	if s.stateRepo == nil {
		return nil
	}
	if err := s.stateRepo.Delete(ctx, store.KeyGamification); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("reset gamification: %w", err)
	}
	return nil
}

// ensureModuleStats returns the stats entry for a module, creating an
// empty one when absent. The second return reports creation.
func (s *Service) ensureModuleStats(moduleID int) (*ModuleStats, bool) {
	if ms, ok := s.state.ModuleStats[moduleID]; ok {
		return ms, false
	}
	ms := &ModuleStats{}
	s.state.ModuleStats[moduleID] = ms
	return ms, true
}

// averageAttempts recomputes the mean attempts over every stored
// exercise result. Recomputing from the results keeps the figure
// correct when a repeat overwrites an earlier record.
func (s *Service) averageAttempts() float64 {
	total, count := 0, 0
	for _, ms := range s.state.ModuleStats {
		for _, r := range ms.ExerciseResults {
			total += r.Attempts
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// firstTryCount re-scans every stored exercise result for first-try
// solves. A full scan, not an incremental counter: overwrites can
// change an old result's attempt count.
func (s *Service) firstTryCount() int {
	n := 0
	for _, ms := range s.state.ModuleStats {
		for _, r := range ms.ExerciseResults {
			if r.Attempts == 1 {
				n++
			}
		}
	}
	return n
}

// snapshot assembles the read-only view the badge scans consume.
func (s *Service) snapshot() badges.Snapshot {
	return badges.Snapshot{
		ModulesCompleted:   s.state.Stats.ModulesCompleted,
		TotalPoints:        s.state.Stats.TotalPoints,
		CurrentStreak:      s.state.Stats.CurrentStreak,
		ExercisesCompleted: s.state.Stats.ExercisesCompleted,
		PerfectExercises:   s.state.Stats.PerfectExercises,
		FirstTryExercises:  s.firstTryCount(),
		Unlocked:           s.unlockedSet(),
	}
}

func (s *Service) unlockedSet() map[string]bool {
	set := make(map[string]bool, len(s.state.Badges))
	for id := range s.state.Badges {
		set[id] = true
	}
	return set
}

func (s *Service) appendActivity(ctx context.Context, data store.ActivityEventData) {
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendActivityEvent(ctx, data)
}

func (s *Service) save(ctx context.Context) error {
	if s.stateRepo == nil {
		return nil
	}
	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("marshal gamification state: %w", err)
	}
	if err := s.stateRepo.Save(ctx, store.KeyGamification, raw); err != nil {
		return fmt.Errorf("save gamification state: %w", err)
	}
	return nil
}
