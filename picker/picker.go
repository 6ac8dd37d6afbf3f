package picker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/huh-boost/storefront/collection"
	"github.com/huh-boost/storefront/config"
	"github.com/huh-boost/storefront/loader"
)

var ErrUnknownCollection = errors.New("unknown collection")

type State int

const (
	Closed State = iota
	OpenIdle
	OpenSearching
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case OpenIdle:
		return "open-idle"
	case OpenSearching:
		return "open-searching"
	default:
		return "unknown"
	}
}

func (s State) IsOpen() bool {
	return s == OpenIdle || s == OpenSearching
}

// View is an immutable snapshot of a picker used for rendering.
type View struct {
	State          State
	Label          string
	Query          string
	Results        []collection.Collection
	ResultsVisible bool
	ActiveOverlay  Overlay
	MobileOpen     bool
	Loader         loader.Snapshot
	Collections    []collection.Collection
	Featured       []collection.Collection
}

// Listening reports whether the outside-interaction listener must be attached.
func (v View) Listening() bool {
	return v.ActiveOverlay != OverlayNone
}

// Picker is the collection search-and-select dropdown of one visitor.
type Picker struct {
	loader *loader.Loader

	mu             sync.Mutex
	state          State
	label          string
	query          string
	results        []collection.Collection
	resultsVisible bool
	mobileOpen     bool
	lastSeen       time.Time
	now            func() time.Time
}

func New(f loader.Fetcher) *Picker {
	return &Picker{
		loader:   loader.New(f),
		label:    config.PickerDefaultLabel,
		now:      time.Now,
		lastSeen: time.Now(),
	}
}

// Mount starts the one-shot collection fetch.
func (p *Picker) Mount(ctx context.Context) {
	p.loader.Start(ctx)
	p.touch()
}

// Unmount cancels the fetch and closes any open overlay.
func (p *Picker) Unmount() {
	p.loader.Stop()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.close()
	p.mobileOpen = false
}

// Loader exposes the picker's data loader.
func (p *Picker) Loader() *loader.Loader {
	return p.loader
}

// Toggle opens a closed dropdown or closes an open one.
func (p *Picker) Toggle() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSeen = p.now()

	if p.state.IsOpen() {
		p.close()
	} else {
		p.state = OpenIdle
	}
	return p.state
}

// Search records the query and recomputes the results. Queries arriving while
// the dropdown is closed are ignored since the input is not on screen.
func (p *Picker) Search(query string) State {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSeen = p.now()

	if !p.state.IsOpen() {
		return p.state
	}
	p.query = query
	if strings.TrimSpace(query) == "" {
		p.results = nil
		p.resultsVisible = false
		p.state = OpenIdle
		return p.state
	}
	p.results = collection.Filter(p.loader.Collections(), query)
	p.resultsVisible = true
	p.state = OpenSearching
	return p.state
}

// Focus re-shows the result panel for the current query.
func (p *Picker) Focus() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSeen = p.now()

	if p.state == OpenSearching {
		p.resultsVisible = true
	}
}

// Select commits a collection chosen by handle or id and returns the route to
// navigate to. The label takes the collection's title, the query resets and the
// dropdown closes.
func (p *Picker) Select(key string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSeen = p.now()

	c, ok := collection.ByHandle(p.loader.Collections(), key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCollection, key)
	}
	p.label = c.Title
	p.close()
	p.mobileOpen = false
	log.Printf("[picker] selected collection %s", c.Handle)
	return collection.Path(c), nil
}

// CloseDropdown closes without selecting, e.g. when following "View All".
func (p *Picker) CloseDropdown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSeen = p.now()
	p.close()
}

// ToggleMobile flips the mobile menu.
func (p *Picker) ToggleMobile() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSeen = p.now()
	p.mobileOpen = !p.mobileOpen
	return p.mobileOpen
}

func (p *Picker) View() View {
	snap := p.loader.Snapshot()

	p.mu.Lock()
	defer p.mu.Unlock()

	var list []collection.Collection
	if snap.Status == loader.Success {
		list = snap.Collections
	}
	return View{
		State:          p.state,
		Label:          p.label,
		Query:          p.query,
		Results:        p.results,
		ResultsVisible: p.resultsVisible && len(p.results) > 0,
		ActiveOverlay:  p.activeOverlay(),
		MobileOpen:     p.mobileOpen,
		Loader:         snap,
		Collections:    list,
		Featured:       collection.Featured(list, config.PickerFeaturedMax),
	}
}

func (p *Picker) LastSeen() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSeen
}

func (p *Picker) touch() {
	p.mu.Lock()
	p.lastSeen = p.now()
	p.mu.Unlock()
}

// close must be called with p.mu held. Closing drops the query so that the
// next open starts idle.
func (p *Picker) close() {
	p.state = Closed
	p.query = ""
	p.results = nil
	p.resultsVisible = false
}
