package session

import "github.com/theirongolddev/tripbook/internal/model"

// Rotator cycles through a day's highlights. The index wraps in both
// directions. Timed advancement is driven externally; Generation identifies
// the current timer so that ticks scheduled before a rearm can be dropped.
type Rotator struct {
	items []string
	index int
	gen   uint64
}

// NewRotator returns a rotator at index 0. An empty list is replaced by the
// fallback highlight.
func NewRotator(highlights []string) *Rotator {
	items := make([]string, len(highlights))
	copy(items, highlights)
	if len(items) == 0 {
		items = []string{model.FallbackHighlight}
	}
	return &Rotator{items: items}
}

// Len returns the number of highlights.
func (r *Rotator) Len() int { return len(r.items) }

// Index returns the current position.
func (r *Rotator) Index() int { return r.index }

// Current returns the highlight at the current position.
func (r *Rotator) Current() string { return r.items[r.index] }

// Items returns a copy of all highlights.
func (r *Rotator) Items() []string {
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}

// HasControls reports whether manual controls are worth showing.
func (r *Rotator) HasControls() bool { return len(r.items) > 1 }

// Advance moves to the next highlight, wrapping to the first.
func (r *Rotator) Advance() {
	r.index = (r.index + 1) % len(r.items)
}

// Retreat moves to the previous highlight, wrapping to the last.
func (r *Rotator) Retreat() {
	r.index = (r.index - 1 + len(r.items)) % len(r.items)
}

// Generation identifies the currently armed timer.
func (r *Rotator) Generation() uint64 { return r.gen }

// Rearm invalidates any outstanding timer and returns the new generation.
func (r *Rotator) Rearm() uint64 {
	r.gen++
	return r.gen
}

// Restart returns to the first highlight and rearms, as when a day page is
// shown again.
func (r *Rotator) Restart() uint64 {
	r.index = 0
	return r.Rearm()
}

// Tick advances only if gen is the current generation, then rearms. It
// reports whether the tick was applied.
func (r *Rotator) Tick(gen uint64) bool {
	if gen != r.gen {
		return false
	}
	r.Advance()
	r.Rearm()
	return true
}
