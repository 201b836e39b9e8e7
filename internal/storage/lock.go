package storage

import (
	"fmt"

	"github.com/gofrs/flock"

	"github.com/nikbrunner/bmcar/internal/model"
)

// lockable is a Storage whose writes are serialised through a lock file.
type lockable interface {
	lockPath() string
	save(store *model.Store) error
}

// withLock runs fn while holding an exclusive lock on path+".lock", so an
// import and a running browser never write the store at the same time.
func withLock(path string, fn func() error) error {
	fl := flock.New(path + ".lock")
	if err := fl.Lock(); err != nil {
		return fmt.Errorf("lock store: %w", err)
	}
	defer func() { _ = fl.Unlock() }()

	return fn()
}

// Update reloads the store, applies fn and saves the result as one step
// under the store lock. Changes made by other processes since the caller's
// last Load are kept. Nothing is saved when fn returns an error.
func Update(s Storage, fn func(store *model.Store) error) (*model.Store, error) {
	apply := func(save func(*model.Store) error) (*model.Store, error) {
		store, err := s.Load()
		if err != nil {
			return nil, err
		}
		if err := fn(store); err != nil {
			return nil, err
		}
		if err := save(store); err != nil {
			return nil, err
		}
		return store, nil
	}

	l, ok := s.(lockable)
	if !ok {
		return apply(s.Save)
	}

	var updated *model.Store
	err := withLock(l.lockPath(), func() error {
		store, err := apply(l.save)
		updated = store
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
