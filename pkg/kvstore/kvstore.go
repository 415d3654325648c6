package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned when a key has no value in the store
var ErrNotFound = errors.New("key not found")

// Store is the shared last-known-state cache used by the live navigation
// path, the reminder scheduler and the background refresh task. Values are
// last-writer-wins, staleness is tolerated.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

func GetJSON[T any](ctx context.Context, store Store, key string) (*T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, err
	}

	return &value, nil
}

func SetJSON[T any](ctx context.Context, store Store, key string, value T, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return store.Set(ctx, key, string(raw), expiration)
}
