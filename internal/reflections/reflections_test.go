package reflections

import (
	"context"
	"testing"
	"time"

	"github.com/rnnlab/rnncourse/internal/store"
)

func TestSaveGetOverwrite(t *testing.T) {
	repo := store.NewMemoryStateRepo()
	ctx := context.Background()
	svc := NewService(ctx, repo)

	t1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	if err := svc.Save(ctx, "why-tanh", "keeps values bounded", t1); err != nil {
		t.Fatal(err)
	}
	r, ok := svc.Get("why-tanh")
	if !ok || r.Text != "keeps values bounded" || !r.SavedAt.Equal(t1) {
		t.Fatalf("get = %+v, %v", r, ok)
	}

	if err := svc.Save(ctx, "why-tanh", "squashes into [-1,1]", t2); err != nil {
		t.Fatal(err)
	}
	r, _ = svc.Get("why-tanh")
	if r.Text != "squashes into [-1,1]" || !r.SavedAt.Equal(t2) {
		t.Errorf("overwrite lost: %+v", r)
	}

	if _, ok := svc.Get("missing"); ok {
		t.Error("unknown prompt should be absent")
	}
}

func TestSaveEmptyPromptID(t *testing.T) {
	svc := NewService(context.Background(), store.NewMemoryStateRepo())
	if err := svc.Save(context.Background(), "  ", "text", time.Now()); err == nil {
		t.Error("expected error for blank prompt id")
	}
}

func TestAllSorted(t *testing.T) {
	repo := store.NewMemoryStateRepo()
	ctx := context.Background()
	svc := NewService(ctx, repo)
	now := time.Now()

	for _, id := range []string{"c", "a", "b"} {
		if err := svc.Save(ctx, id, "x", now); err != nil {
			t.Fatal(err)
		}
	}
	all := svc.All()
	if len(all) != 3 || all[0].PromptID != "a" || all[2].PromptID != "c" {
		t.Errorf("all = %+v", all)
	}
}

func TestDeleteAndRoundTrip(t *testing.T) {
	repo := store.NewMemoryStateRepo()
	ctx := context.Background()
	svc := NewService(ctx, repo)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	if err := svc.Save(ctx, "p1", "one", now); err != nil {
		t.Fatal(err)
	}
	if err := svc.Save(ctx, "p2", "two", now); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, "p1"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, "p1"); err != nil {
		t.Errorf("double delete should be a no-op: %v", err)
	}

	svc2 := NewService(ctx, repo)
	if _, ok := svc2.Get("p1"); ok {
		t.Error("deleted response came back")
	}
	if r, ok := svc2.Get("p2"); !ok || r.Text != "two" {
		t.Errorf("round trip lost p2: %+v, %v", r, ok)
	}
}

func TestMalformedBlobFallsBack(t *testing.T) {
	repo := store.NewMemoryStateRepo()
	ctx := context.Background()
	if err := repo.Save(ctx, store.KeyReflections, []byte(`{"p1": "not an object"}`)); err != nil {
		t.Fatal(err)
	}
	svc := NewService(ctx, repo)
	if len(svc.All()) != 0 {
		t.Error("expected fresh state after malformed blob")
	}
}
