package loader

import (
	"context"
	"log"
	"sync"

	"github.com/huh-boost/storefront/collection"
)

type Status int

const (
	Loading Status = iota
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Fetcher returns the current collection list.
type Fetcher interface {
	Fetch(ctx context.Context) ([]collection.Collection, error)
}

// FetchFunc adapts a function to Fetcher.
type FetchFunc func(ctx context.Context) ([]collection.Collection, error)

func (f FetchFunc) Fetch(ctx context.Context) ([]collection.Collection, error) {
	return f(ctx)
}

// Snapshot is the loader state as seen by renderers.
type Snapshot struct {
	Status      Status
	Collections []collection.Collection
	Err         error
}

// Loader performs the one-shot fetch for a mounted picker. Each Start bumps a
// generation; a result is applied only while its generation is current, so a
// fetch that settles after Stop or a newer Start is discarded.
type Loader struct {
	fetcher Fetcher

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
	snap   Snapshot
}

func New(f Fetcher) *Loader {
	done := make(chan struct{})
	close(done)
	return &Loader{
		fetcher: f,
		done:    done,
		snap:    Snapshot{Status: Loading},
	}
}

// Start issues the fetch in the background. Any fetch still in flight is
// cancelled and its result will be ignored.
func (l *Loader) Start(ctx context.Context) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	done := make(chan struct{})
	l.done = done
	l.snap = Snapshot{Status: Loading}
	l.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()
		list, err := l.fetcher.Fetch(ctx)
		l.apply(gen, list, err)
	}()
}

func (l *Loader) apply(gen uint64, list []collection.Collection, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		log.Printf("[loader] discarding stale result (generation %d, current %d)", gen, l.gen)
		return false
	}
	l.cancel = nil
	if err != nil {
		log.Printf("[loader] failed to fetch collections: %v", err)
		l.snap = Snapshot{Status: Failure, Err: err}
		return true
	}
	if list == nil {
		list = []collection.Collection{}
	}
	l.snap = Snapshot{Status: Success, Collections: list}
	return true
}

// Stop cancels any fetch in flight and invalidates its result.
func (l *Loader) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap
}

// Collections returns the loaded list, empty unless the fetch succeeded.
func (l *Loader) Collections() []collection.Collection {
	snap := l.Snapshot()
	if snap.Status != Success {
		return nil
	}
	return snap.Collections
}

// Wait blocks until the most recent fetch settles or ctx is done.
func (l *Loader) Wait(ctx context.Context) error {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
