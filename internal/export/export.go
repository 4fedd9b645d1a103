// Package export moves the full learner state in and out of a single
// JSON archive, for backups and machine-to-machine transfer.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rnnlab/rnncourse/internal/store"
)

// ArchiveVersion is the current archive format version.
const ArchiveVersion = 1

// Archive is the on-disk export format: every state blob keyed the
// same way the store keys it.
type Archive struct {
	Version    int                        `json:"version"`
	ExportedAt time.Time                  `json:"exported_at"`
	State      map[string]json.RawMessage `json:"state"`
}

// Export collects every state blob into an archive and returns its
// JSON encoding. Keys with no stored value are simply absent.
func Export(ctx context.Context, repo store.StateRepo, now time.Time) ([]byte, error) {
	arch := Archive{
		Version:    ArchiveVersion,
		ExportedAt: now.UTC(),
		State:      make(map[string]json.RawMessage),
	}
	for _, key := range store.AllStateKeys() {
		raw, err := repo.Load(ctx, key)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", key, err)
		}
		arch.State[key] = raw
	}
	return json.MarshalIndent(arch, "", "  ")
}

// Import validates an archive against the format schema and writes its
// blobs into the store, overwriting existing state for the keys it
// carries. Keys outside the known set are rejected up front so a typo
// cannot plant orphan blobs.
func Import(ctx context.Context, repo store.StateRepo, data []byte) error {
	if err := validateArchive(data); err != nil {
		return err
	}

	var arch Archive
	if err := json.Unmarshal(data, &arch); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if arch.Version != ArchiveVersion {
		return fmt.Errorf("import: unsupported archive version %d", arch.Version)
	}

	known := make(map[string]bool)
	for _, key := range store.AllStateKeys() {
		known[key] = true
	}
	for key := range arch.State {
		if !known[key] {
			return fmt.Errorf("import: unknown state key %q", key)
		}
	}

	for key, raw := range arch.State {
		if err := repo.Save(ctx, key, raw); err != nil {
			return fmt.Errorf("import %s: %w", key, err)
		}
	}
	return nil
}
