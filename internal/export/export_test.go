package export

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rnnlab/rnncourse/internal/store"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := store.NewMemoryStateRepo()

	if err := src.Save(ctx, store.KeyProgress, []byte(`{"completed_modules":[0,1]}`)); err != nil {
		t.Fatal(err)
	}
	if err := src.Save(ctx, store.KeyGamification, []byte(`{"stats":{"total_points":250}}`)); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	data, err := Export(ctx, src, now)
	if err != nil {
		t.Fatal(err)
	}

	var arch Archive
	if err := json.Unmarshal(data, &arch); err != nil {
		t.Fatal(err)
	}
	if arch.Version != ArchiveVersion {
		t.Errorf("version = %d", arch.Version)
	}
	if len(arch.State) != 2 {
		t.Errorf("state keys = %d, want 2 (absent blobs skipped)", len(arch.State))
	}

	dst := store.NewMemoryStateRepo()
	if err := Import(ctx, dst, data); err != nil {
		t.Fatal(err)
	}
	raw, err := dst.Load(ctx, store.KeyProgress)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "completed_modules") {
		t.Errorf("imported blob = %s", raw)
	}
	if _, err := dst.Load(ctx, store.KeyQuiz); err == nil {
		t.Error("absent key should stay absent after import")
	}
}

func TestImportRejectsInvalidArchives(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryStateRepo()

	cases := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"missing fields", `{"version": 1}`},
		{"version wrong type", `{"version": "1", "exported_at": "2026-03-10T09:00:00Z", "state": {}}`},
		{"blob not object", `{"version": 1, "exported_at": "2026-03-10T09:00:00Z", "state": {"progress": [1,2]}}`},
		{"extra field", `{"version": 1, "exported_at": "2026-03-10T09:00:00Z", "state": {}, "junk": true}`},
	}
	for _, tc := range cases {
		if err := Import(ctx, repo, []byte(tc.data)); err == nil {
			t.Errorf("%s: import accepted", tc.name)
		}
	}

	if keys, _ := repo.Keys(ctx); len(keys) != 0 {
		t.Errorf("rejected imports wrote blobs: %v", keys)
	}
}

func TestImportRejectsUnknownKey(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryStateRepo()
	data := `{"version": 1, "exported_at": "2026-03-10T09:00:00Z", "state": {"progrss": {}}}`
	if err := Import(ctx, repo, []byte(data)); err == nil {
		t.Error("import accepted misspelled key")
	}
}

func TestImportRejectsFutureVersion(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryStateRepo()
	data := `{"version": 2, "exported_at": "2026-03-10T09:00:00Z", "state": {}}`
	if err := Import(ctx, repo, []byte(data)); err == nil {
		t.Error("import accepted future archive version")
	}
}
