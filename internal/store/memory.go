package store

import (
	"context"
	"sort"
)

// MemoryStateRepo is an in-memory StateRepo for tests and dry runs.
type MemoryStateRepo struct {
	blobs map[string][]byte
}

// NewMemoryStateRepo creates an empty in-memory state repo.
func NewMemoryStateRepo() *MemoryStateRepo {
	return &MemoryStateRepo{blobs: make(map[string][]byte)}
}

func (r *MemoryStateRepo) Load(_ context.Context, key string) ([]byte, error) {
	data, ok := r.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (r *MemoryStateRepo) Save(_ context.Context, key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	r.blobs[key] = cp
	return nil
}

func (r *MemoryStateRepo) Delete(_ context.Context, key string) error {
	delete(r.blobs, key)
	return nil
}

func (r *MemoryStateRepo) Keys(_ context.Context) ([]string, error) {
	keys := make([]string, 0, len(r.blobs))
	for k := range r.blobs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
