package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gaming-storefront/internal/event"
	"gaming-storefront/internal/model"
)

type Clock func() time.Time

// Deps is shared by the store services. Lock serialises every
// read-modify-write of a collection within the process so a snapshot import
// cannot interleave with a single-store update.
type Deps struct {
	Lock     sync.Locker
	Notifier event.Notifier
	Log      *slog.Logger
	Clock    Clock
}

func NewDeps(notifier event.Notifier, log *slog.Logger) Deps {
	return Deps{
		Lock:     &sync.Mutex{},
		Notifier: notifier,
		Log:      log,
		Clock:    time.Now,
	}
}

// changeSet collects the new size of every collection a mutation wrote.
type changeSet map[string]int

// mutate runs fn while holding Lock and publishes the recorded changes once
// the lock is released, so a slow publisher never blocks other writers.
func (d Deps) mutate(ctx context.Context, fn func(changes changeSet) error) error {
	changes := changeSet{}
	if err := d.locked(func() error { return fn(changes) }); err != nil {
		return err
	}

	for key, size := range changes {
		d.changed(ctx, key, size)
	}
	return nil
}

func (d Deps) locked(fn func() error) error {
	d.Lock.Lock()
	defer d.Lock.Unlock()
	return fn()
}

func (d Deps) changed(ctx context.Context, key string, size int) {
	d.Notifier.CollectionChanged(ctx, model.CollectionChanged{
		Collection: key,
		Size:       size,
		ChangedAt:  d.Clock(),
	})
}
