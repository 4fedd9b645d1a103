package progress

import (
	"context"
	"testing"
	"time"

	"github.com/rnnlab/rnncourse/internal/store"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *store.MemoryStateRepo) {
	t.Helper()
	repo := store.NewMemoryStateRepo()
	return NewService(context.Background(), repo, testNow), repo
}

func TestStatusFreshState(t *testing.T) {
	s, _ := newTestService(t)

	if got := s.Status(0); got != StatusAvailable {
		t.Errorf("module 0 = %s, want available", got)
	}
	if got := s.Status(1); got != StatusLocked {
		t.Errorf("module 1 = %s, want locked", got)
	}
}

func TestStatusTransitions(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	if _, err := s.CompleteModule(ctx, 0, testNow); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := s.SetCurrentModule(ctx, 2, testNow); err != nil {
		t.Fatalf("set current: %v", err)
	}

	if got := s.Status(0); got != StatusCompleted {
		t.Errorf("module 0 = %s, want completed", got)
	}
	if got := s.Status(1); got != StatusAvailable {
		t.Errorf("module 1 = %s, want available (predecessor done)", got)
	}
	if got := s.Status(2); got != StatusInProgress {
		t.Errorf("module 2 = %s, want in_progress", got)
	}
	if got := s.Status(3); got != StatusLocked {
		t.Errorf("module 3 = %s, want locked", got)
	}
}

func TestCompletedBeatsCurrent(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	if err := s.SetCurrentModule(ctx, 0, testNow); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CompleteModule(ctx, 0, testNow); err != nil {
		t.Fatal(err)
	}
	if got := s.Status(0); got != StatusCompleted {
		t.Errorf("completed module = %s, want completed regardless of current", got)
	}
}

func TestDuplicateCompletionIsNoOp(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	changed, err := s.CompleteModule(ctx, 4, testNow)
	if err != nil || !changed {
		t.Fatalf("first completion: changed=%v err=%v", changed, err)
	}
	changed, err = s.CompleteModule(ctx, 4, testNow)
	if err != nil || changed {
		t.Fatalf("second completion: changed=%v err=%v, want no-op", changed, err)
	}
	if got := s.CompletedModules(); len(got) != 1 {
		t.Errorf("completed = %v, want one entry", got)
	}
}

func TestRoundTrip(t *testing.T) {
	s, repo := newTestService(t)
	ctx := context.Background()

	for _, id := range []int{0, 1, 4} {
		if _, err := s.CompleteModule(ctx, id, testNow); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.SetCurrentPath(ctx, "quick-wins", testNow); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCurrentModule(ctx, 2, testNow); err != nil {
		t.Fatal(err)
	}

	// Rebuild from the same repo.
	s2 := NewService(ctx, repo, testNow.Add(time.Hour))
	if got := s2.CompletedModules(); len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 4 {
		t.Errorf("reloaded completed = %v", got)
	}
	if cur, ok := s2.CurrentModule(); !ok || cur != 2 {
		t.Errorf("reloaded current = %d, %v", cur, ok)
	}
	if p, ok := s2.CurrentPath(); !ok || p != "quick-wins" {
		t.Errorf("reloaded path = %q, %v", p, ok)
	}
}

func TestMalformedBlobFallsBackToEmpty(t *testing.T) {
	repo := store.NewMemoryStateRepo()
	ctx := context.Background()
	if err := repo.Save(ctx, store.KeyProgress, []byte(`{"completed_modules": "oops"`)); err != nil {
		t.Fatal(err)
	}

	s := NewService(ctx, repo, testNow)
	if got := s.CompletedModules(); len(got) != 0 {
		t.Errorf("completed = %v, want empty after malformed blob", got)
	}
}

func TestPercent(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	if got := s.Percent(); got != 0 {
		t.Errorf("fresh percent = %d, want 0", got)
	}
	for _, id := range []int{0, 1, 2, 4, 8} {
		if _, err := s.CompleteModule(ctx, id, testNow); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.PathPercent("quick-wins"); got != 100 {
		t.Errorf("quick-wins percent = %d, want 100", got)
	}
	if got := s.PathPercent("full-course"); got != 42 {
		t.Errorf("full-course percent = %d, want 42 (5 of 12)", got)
	}
	if got := s.PathPercent("nope"); got != 0 {
		t.Errorf("unknown path percent = %d, want 0", got)
	}
}

func TestReset(t *testing.T) {
	s, repo := newTestService(t)
	ctx := context.Background()

	if _, err := s.CompleteModule(ctx, 0, testNow); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(ctx, testNow); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(s.CompletedModules()) != 0 {
		t.Error("completed set survived reset")
	}
	if _, err := repo.Load(ctx, store.KeyProgress); err == nil {
		t.Error("blob survived reset")
	}
}
