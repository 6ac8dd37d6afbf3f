package picker

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/huh-boost/storefront/loader"
)

// Registry holds one picker per visitor session. A picker is mounted on the
// visitor's first page render and unmounted when replaced, removed or idle
// for longer than the idle TTL.
type Registry struct {
	fetcher loader.Fetcher
	idleTTL time.Duration
	now     func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	pickers map[string]*Picker

	stopOnce sync.Once
	stopped  chan struct{}
}

func NewRegistry(f loader.Fetcher, idleTTL time.Duration) *Registry {
	ctx, cancel := context.WithCancel(context.Background())
	return &Registry{
		fetcher: f,
		idleTTL: idleTTL,
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
		pickers: make(map[string]*Picker),
		stopped: make(chan struct{}),
	}
}

// Mount replaces any picker of the session with a freshly mounted one.
func (r *Registry) Mount(sessionID string) *Picker {
	p := New(r.fetcher)
	p.now = r.now

	r.mu.Lock()
	old := r.pickers[sessionID]
	r.pickers[sessionID] = p
	r.mu.Unlock()

	if old != nil {
		old.Unmount()
	}
	p.Mount(r.ctx)
	return p
}

// Acquire returns the session's picker, mounting one if needed.
func (r *Registry) Acquire(sessionID string) *Picker {
	if p, ok := r.Get(sessionID); ok {
		return p
	}
	return r.Mount(sessionID)
}

// Reload returns the session's picker for a full page render. A picker whose
// fetch failed is remounted so the catalog is requested again.
func (r *Registry) Reload(sessionID string) *Picker {
	if p, ok := r.Get(sessionID); ok && p.Loader().Snapshot().Status != loader.Failure {
		return p
	}
	return r.Mount(sessionID)
}

func (r *Registry) Get(sessionID string) (*Picker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pickers[sessionID]
	return p, ok
}

func (r *Registry) Unmount(sessionID string) {
	r.mu.Lock()
	p := r.pickers[sessionID]
	delete(r.pickers, sessionID)
	r.mu.Unlock()

	if p != nil {
		p.Unmount()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pickers)
}

// Sweep unmounts pickers idle for longer than the TTL and returns how many.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.idleTTL)

	var idle []*Picker
	r.mu.Lock()
	for sid, p := range r.pickers {
		if p.LastSeen().Before(cutoff) {
			idle = append(idle, p)
			delete(r.pickers, sid)
		}
	}
	r.mu.Unlock()

	for _, p := range idle {
		p.Unmount()
	}
	return len(idle)
}

// StartSweeper runs Sweep on a ticker until Close.
func (r *Registry) StartSweeper(every time.Duration) {
	go func() {
		log.Printf("[picker] Idle sweeper started (every %s, ttl %s)", every, r.idleTTL)
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-r.stopped:
				return
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					log.Printf("[picker] Unmounted %d idle pickers", n)
				}
			}
		}
	}()
}

// Close unmounts every picker and stops the sweeper.
func (r *Registry) Close() {
	r.stopOnce.Do(func() {
		close(r.stopped)
		r.cancel()

		r.mu.Lock()
		pickers := r.pickers
		r.pickers = make(map[string]*Picker)
		r.mu.Unlock()

		for _, p := range pickers {
			p.Unmount()
		}
	})
}
