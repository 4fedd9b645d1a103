package store

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestStateBlobRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	if _, err := repo.Load(ctx, KeyProgress); !errors.Is(err, ErrNotFound) {
		t.Fatalf("load missing key: err = %v, want ErrNotFound", err)
	}

	blob := []byte(`{"completed_modules":[0,1],"current_module":2}`)
	if err := repo.Save(ctx, KeyProgress, blob); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, KeyProgress)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected non-empty blob")
	}

	// Rewrite replaces, never appends.
	blob2 := []byte(`{"completed_modules":[0,1,2]}`)
	if err := repo.Save(ctx, KeyProgress, blob2); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	keys, err := repo.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != KeyProgress {
		t.Errorf("keys = %v, want [%s]", keys, KeyProgress)
	}

	if err := repo.Delete(ctx, KeyProgress); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Load(ctx, KeyProgress); !errors.Is(err, ErrNotFound) {
		t.Fatalf("load after delete: err = %v, want ErrNotFound", err)
	}
}

func TestSaveRejectsNonObject(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()

	if err := repo.Save(context.Background(), KeyQuiz, []byte(`[1,2,3]`)); err == nil {
		t.Fatal("expected error for non-object blob")
	}
}

func TestEventSequenceIncreases(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	mod := 3
	for i := 0; i < 3; i++ {
		err := repo.AppendActivityEvent(ctx, ActivityEventData{
			Kind:     ActivityModuleCompleted,
			ModuleID: &mod,
			Points:   150,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	err := repo.AppendBadgeEvent(ctx, BadgeEventData{
		BadgeID:  "memory_master",
		Rarity:   "epic",
		Category: "completion",
		Reason:   "Completed Long Short-Term Memory",
	})
	if err != nil {
		t.Fatalf("append badge: %v", err)
	}

	acts, err := repo.QueryActivityEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query activity: %v", err)
	}
	if len(acts) != 3 {
		t.Fatalf("activity events = %d, want 3", len(acts))
	}
	// Newest first, strictly decreasing sequence.
	for i := 1; i < len(acts); i++ {
		if acts[i].Sequence >= acts[i-1].Sequence {
			t.Errorf("sequence not strictly decreasing: %d then %d", acts[i-1].Sequence, acts[i].Sequence)
		}
	}

	badges, err := repo.QueryBadgeEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query badges: %v", err)
	}
	if len(badges) != 1 {
		t.Fatalf("badge events = %d, want 1", len(badges))
	}
	// The badge event came after all activity events.
	if badges[0].Sequence <= acts[0].Sequence {
		t.Errorf("badge sequence %d not after activity sequence %d", badges[0].Sequence, acts[0].Sequence)
	}

	byRarity, total, err := repo.BadgeCounts(ctx)
	if err != nil {
		t.Fatalf("badge counts: %v", err)
	}
	if total != 1 || byRarity["epic"] != 1 {
		t.Errorf("counts = %v total %d, want epic:1 total 1", byRarity, total)
	}
}

func TestQueryLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		id := i
		if err := repo.AppendActivityEvent(ctx, ActivityEventData{
			Kind:     ActivityModuleStarted,
			ModuleID: &id,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	acts, err := repo.QueryActivityEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(acts) != 2 {
		t.Errorf("limited query = %d events, want 2", len(acts))
	}
}

func TestMemoryStateRepo(t *testing.T) {
	repo := NewMemoryStateRepo()
	ctx := context.Background()

	if _, err := repo.Load(ctx, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := repo.Save(ctx, "x", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx, "x")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("load = %s", got)
	}
}
