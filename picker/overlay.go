package picker

import "fmt"

// Overlay identifies a transient panel that closes on outside interaction.
// The search-results panel sits inside the dropdown panel.
type Overlay string

const (
	OverlayNone          Overlay = "none"
	OverlayDropdown      Overlay = "dropdown"
	OverlaySearchResults Overlay = "search-results"
)

func ParseOverlay(s string) (Overlay, error) {
	switch Overlay(s) {
	case OverlayNone, OverlayDropdown, OverlaySearchResults:
		return Overlay(s), nil
	case "":
		return OverlayNone, nil
	default:
		return OverlayNone, fmt.Errorf("unknown overlay %q", s)
	}
}

// contains reports whether o encloses inner.
func (o Overlay) contains(inner Overlay) bool {
	switch o {
	case OverlayDropdown:
		return inner == OverlayDropdown || inner == OverlaySearchResults
	case OverlaySearchResults:
		return inner == OverlaySearchResults
	default:
		return false
	}
}

// activeOverlay is the innermost visible overlay. Must be called with p.mu held.
func (p *Picker) activeOverlay() Overlay {
	if !p.state.IsOpen() {
		return OverlayNone
	}
	if p.resultsVisible && len(p.results) > 0 {
		return OverlaySearchResults
	}
	return OverlayDropdown
}

// ActiveOverlay returns the overlay the single outside listener is keyed by.
func (p *Picker) ActiveOverlay() Overlay {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.activeOverlay()
}

// Listening reports whether an outside-interaction listener should be attached.
func (p *Picker) Listening() bool {
	return p.ActiveOverlay() != OverlayNone
}

// Outside handles an interaction that landed inside the overlay within
// (OverlayNone when it hit neither panel). Every visible overlay that does not
// enclose the target closes. It reports whether anything changed; while
// closed it is a no-op.
func (p *Picker) Outside(within Overlay) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSeen = p.now()

	switch p.activeOverlay() {
	case OverlayNone:
		return false
	case OverlaySearchResults:
		if OverlaySearchResults.contains(within) {
			return false
		}
		p.resultsVisible = false
		if !OverlayDropdown.contains(within) {
			p.close()
		}
		return true
	default:
		if OverlayDropdown.contains(within) {
			return false
		}
		p.close()
		return true
	}
}
