// Package progress tracks which modules the learner has completed and
// where they currently are in the course. It is the source of truth
// for completion; the gamification service consumes completion events
// but never owns the set.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rnnlab/rnncourse/internal/course"
	"github.com/rnnlab/rnncourse/internal/points"
	"github.com/rnnlab/rnncourse/internal/store"
)

// ModuleStatus describes a module's availability for the learner.
type ModuleStatus string

const (
	StatusLocked     ModuleStatus = "locked"
	StatusAvailable  ModuleStatus = "available"
	StatusInProgress ModuleStatus = "in_progress"
	StatusCompleted  ModuleStatus = "completed"
)

// State is the persisted shape of learner progress.
type State struct {
	CompletedModules []int     `json:"completed_modules"`
	CurrentModule    *int      `json:"current_module,omitempty"`
	CurrentPath      *string   `json:"current_path,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Service manages learner progress, persisting after every mutation.
type Service struct {
	completed map[int]bool
	current   *int
	path      *string
	createdAt time.Time
	updatedAt time.Time

	stateRepo store.StateRepo
}

// NewService creates a progress service, loading state from the repo.
// A missing or malformed blob yields a fresh empty state.
func NewService(ctx context.Context, stateRepo store.StateRepo, now time.Time) *Service {
	s := &Service{
		completed: make(map[int]bool),
		createdAt: now,
		updatedAt: now,
		stateRepo: stateRepo,
	}

	if stateRepo == nil {
		return s
	}

	raw, err := stateRepo.Load(ctx, store.KeyProgress)
	if err != nil {
		return s
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return s
	}

	for _, id := range st.CompletedModules {
		s.completed[id] = true
	}
	s.current = st.CurrentModule
	s.path = st.CurrentPath
	if !st.CreatedAt.IsZero() {
		s.createdAt = st.CreatedAt
	}
	if !st.UpdatedAt.IsZero() {
		s.updatedAt = st.UpdatedAt
	}
	return s
}

// CompleteModule adds a module to the completed set. Duplicate
// completion is a no-op for membership; the returned bool reports
// whether the set changed.
func (s *Service) CompleteModule(ctx context.Context, id int, now time.Time) (bool, error) {
	if s.completed[id] {
		return false, nil
	}
	s.completed[id] = true
	s.updatedAt = now
	return true, s.save(ctx)
}

// SetCurrentModule records the module the learner is working on.
// Ids are not validated against the catalog; unknown ids simply render
// as not found downstream.
func (s *Service) SetCurrentModule(ctx context.Context, id int, now time.Time) error {
	s.current = &id
	s.updatedAt = now
	return s.save(ctx)
}

// SetCurrentPath records the selected learning path.
func (s *Service) SetCurrentPath(ctx context.Context, pathID string, now time.Time) error {
	s.path = &pathID
	s.updatedAt = now
	return s.save(ctx)
}

// CompletedModules returns the completed set as a sorted slice.
func (s *Service) CompletedModules() []int {
	ids := make([]int, 0, len(s.completed))
	for id := range s.completed {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// CompletedSet returns completion membership keyed by module id.
func (s *Service) CompletedSet() map[int]bool {
	set := make(map[int]bool, len(s.completed))
	for id := range s.completed {
		set[id] = true
	}
	return set
}

// IsCompleted reports whether a module has been completed.
func (s *Service) IsCompleted(id int) bool {
	return s.completed[id]
}

// CurrentModule returns the current module id, if any.
func (s *Service) CurrentModule() (int, bool) {
	if s.current == nil {
		return 0, false
	}
	return *s.current, true
}

// CurrentPath returns the selected path id, if any.
func (s *Service) CurrentPath() (string, bool) {
	if s.path == nil {
		return "", false
	}
	return *s.path, true
}

// Status computes a module's availability. A module is available when
// it is the first module or its predecessor in catalog order is
// completed; paths may skip modules, but gating always follows the
// full catalog chain.
func (s *Service) Status(id int) ModuleStatus {
	switch {
	case s.completed[id]:
		return StatusCompleted
	case s.current != nil && *s.current == id:
		return StatusInProgress
	case id == 0 || s.completed[id-1]:
		return StatusAvailable
	default:
		return StatusLocked
	}
}

// Percent returns overall course completion as a whole percentage.
func (s *Service) Percent() int {
	return points.CalculateProgress(len(s.completed), course.ModuleCount())
}

// PathPercent returns completion of a single path as a percentage.
// Unknown path ids yield zero.
func (s *Service) PathPercent(pathID string) int {
	p, ok := course.GetPath(pathID)
	if !ok {
		return 0
	}
	done := 0
	for _, id := range p.ModuleIDs {
		if s.completed[id] {
			done++
		}
	}
	return points.CalculateProgress(done, len(p.ModuleIDs))
}

// Reset discards all progress, both in memory and in the store.
func (s *Service) Reset(ctx context.Context, now time.Time) error {
	s.completed = make(map[int]bool)
	s.current = nil
	s.path = nil
	s.createdAt = now
	s.updatedAt = now
	if s.stateRepo == nil {
		return nil
	}
	if err := s.stateRepo.Delete(ctx, store.KeyProgress); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

func (s *Service) save(ctx context.Context) error {
	if s.stateRepo == nil {
		return nil
	}
	st := State{
		CompletedModules: s.CompletedModules(),
		CurrentModule:    s.current,
		CurrentPath:      s.path,
		CreatedAt:        s.createdAt,
		UpdatedAt:        s.updatedAt,
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := s.stateRepo.Save(ctx, store.KeyProgress, raw); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
