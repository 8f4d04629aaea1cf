package config

import (
	"sync"
	"sync/atomic"

	"github.com/quorumlab/helmsman/pkg/storage"
)

// field is one configuration value with its persistent reference. Writers
// serialize on mu and follow a persist-then-publish sequence; readers load
// the published snapshot without ever touching the store. Separate fields
// never block each other.
type field[T any] struct {
	ref *storage.Ref[T]
	mu  sync.Mutex
	cur atomic.Pointer[T]
}

func newField[T any](store storage.Store, key string, initial T) *field[T] {
	f := &field[T]{ref: storage.NewRef[T](store, key)}
	f.publish(initial)
	return f
}

func (f *field[T]) get() T {
	return *f.cur.Load()
}

func (f *field[T]) publish(v T) {
	f.cur.Store(&v)
}

// set persists v and only then makes it visible to readers. On a store
// error the published snapshot is left untouched.
func (f *field[T]) set(v T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ref.Store(v); err != nil {
		return err
	}
	f.publish(v)
	return nil
}

// adopt writes the current snapshot only if the key is empty, then
// publishes whatever value is now persisted.
func (f *field[T]) adopt() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, err := f.ref.StoreIfAbsent(f.get())
	if err != nil {
		return err
	}
	f.publish(v)
	return nil
}
