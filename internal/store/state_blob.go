package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rnnlab/rnncourse/ent"
	"github.com/rnnlab/rnncourse/ent/stateblob"
)

// stateRepo implements StateRepo using the ent client.
type stateRepo struct {
	client *ent.Client
}

func (r *stateRepo) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := r.client.StateBlob.Query().
		Where(stateblob.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load state %q: %w", key, err)
	}

	data, err := json.Marshal(blob.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal state %q: %w", key, err)
	}
	return data, nil
}

func (r *stateRepo) Save(ctx context.Context, key string, data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("state %q is not a JSON object: %w", key, err)
	}

	existing, err := r.client.StateBlob.Query().
		Where(stateblob.Key(key)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query state %q: %w", key, err)
		}
		_, err = r.client.StateBlob.Create().
			SetKey(key).
			SetData(m).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create state %q: %w", key, err)
		}
		return nil
	}

	_, err = existing.Update().SetData(m).Save(ctx)
	if err != nil {
		return fmt.Errorf("update state %q: %w", key, err)
	}
	return nil
}

func (r *stateRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.StateBlob.Delete().
		Where(stateblob.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}
	return nil
}

func (r *stateRepo) Keys(ctx context.Context) ([]string, error) {
	keys, err := r.client.StateBlob.Query().
		Order(ent.Asc(stateblob.FieldKey)).
		Select(stateblob.FieldKey).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list state keys: %w", err)
	}
	return keys, nil
}
