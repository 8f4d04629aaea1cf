package storage

import (
	"encoding/json"
	"fmt"
)

// Ref is a typed persistent reference to one value in a Store. Values are
// serialized as JSON under the reference's key.
type Ref[T any] struct {
	store Store
	key   string
}

// NewRef creates a reference bound to key in store.
func NewRef[T any](store Store, key string) *Ref[T] {
	return &Ref[T]{store: store, key: key}
}

// Key returns the key this reference is bound to.
func (r *Ref[T]) Key() string {
	return r.key
}

// Load returns the persisted value, with found=false when nothing has been
// stored under the key yet.
func (r *Ref[T]) Load() (T, bool, error) {
	var value T
	data, found, err := r.store.Load(r.key)
	if err != nil {
		return value, false, fmt.Errorf("failed to load %s: %w", r.key, err)
	}
	if !found {
		return value, false, nil
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, false, fmt.Errorf("failed to decode %s: %w", r.key, err)
	}
	return value, true, nil
}

// Store persists value, overwriting any previous value.
func (r *Ref[T]) Store(value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.key, err)
	}
	if err := r.store.Store(r.key, data); err != nil {
		return fmt.Errorf("failed to store %s: %w", r.key, err)
	}
	return nil
}

// StoreIfAbsent persists value only when the key holds nothing, and returns
// whichever value is now persisted (the existing one or the one just
// written).
func (r *Ref[T]) StoreIfAbsent(value T) (T, error) {
	var out T
	data, err := json.Marshal(value)
	if err != nil {
		return out, fmt.Errorf("failed to encode %s: %w", r.key, err)
	}
	current, err := r.store.StoreIfAbsent(r.key, data)
	if err != nil {
		return out, fmt.Errorf("failed to store %s: %w", r.key, err)
	}
	if err := json.Unmarshal(current, &out); err != nil {
		return out, fmt.Errorf("failed to decode %s: %w", r.key, err)
	}
	return out, nil
}
