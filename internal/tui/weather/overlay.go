package weather

import (
	"math/rand"
	"strings"
	"time"

	"github.com/theirongolddev/tripbook/internal/model"
)

// RainDrops is the number of particles generated for a rainy day.
const RainDrops = 50

// Particle is one rain drop. X is a fraction of the page width; the drop
// falls the full height once per Duration after an initial Delay.
type Particle struct {
	X        float64
	Duration time.Duration
	Delay    time.Duration
}

// Overlay holds the particle set for the shown day. The set is derived only
// from the current weather; nothing carries over between values.
type Overlay struct {
	rng       *rand.Rand
	weather   model.Weather
	particles []Particle
	elapsed   time.Duration
}

// NewOverlay returns an empty overlay drawing randomness from rng.
// A nil rng is seeded from the clock.
func NewOverlay(rng *rand.Rand) *Overlay {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // visual jitter only
	}
	return &Overlay{rng: rng}
}

// Set switches the overlay to w. Switching to Rainy generates a fresh set of
// RainDrops particles; any other value clears them. Setting the current
// value again is a no-op.
func (o *Overlay) Set(w model.Weather) {
	if w == o.weather && (w != model.Rainy || o.particles != nil) {
		return
	}
	o.weather = w
	o.elapsed = 0
	o.particles = nil
	if w != model.Rainy {
		return
	}

	o.particles = make([]Particle, RainDrops)
	for i := range o.particles {
		o.particles[i] = Particle{
			X:        o.rng.Float64(),
			Duration: 500*time.Millisecond + time.Duration(o.rng.Int63n(int64(500*time.Millisecond)+1)),
			Delay:    time.Duration(o.rng.Int63n(int64(2*time.Second) + 1)),
		}
	}
}

// Clear removes all particles and forgets the weather.
func (o *Overlay) Clear() {
	o.weather = ""
	o.particles = nil
	o.elapsed = 0
}

// Weather returns the value the overlay was last set to.
func (o *Overlay) Weather() model.Weather { return o.weather }

// Particles returns a copy of the current particle set.
func (o *Overlay) Particles() []Particle {
	if o.particles == nil {
		return nil
	}
	out := make([]Particle, len(o.particles))
	copy(out, o.particles)
	return out
}

// Animated reports whether frames change over time.
func (o *Overlay) Animated() bool {
	return TreatmentFor(o.weather).Overlay != OverlayNone
}

// Step advances the animation clock.
func (o *Overlay) Step(d time.Duration) {
	if d > 0 {
		o.elapsed += d
	}
}

// Frame renders the overlay as a width x height grid of runes; blank cells
// are spaces so the frame can be merged over page content.
func (o *Overlay) Frame(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	switch TreatmentFor(o.weather).Overlay {
	case OverlayRain:
		o.drawRain(grid, width, height)
	case OverlaySnow:
		o.drawSnow(grid, width, height)
	}

	out := make([]string, height)
	for i, row := range grid {
		out[i] = string(row)
	}
	return out
}

func (o *Overlay) drawRain(grid [][]rune, width, height int) {
	for _, p := range o.particles {
		if o.elapsed < p.Delay || p.Duration <= 0 {
			continue
		}
		t := (o.elapsed - p.Delay) % p.Duration
		y := int(float64(t) / float64(p.Duration) * float64(height))
		x := int(p.X * float64(width))
		if x >= width {
			x = width - 1
		}
		if y >= height {
			y = height - 1
		}
		grid[y][x] = '│'
		if y > 0 {
			grid[y-1][x] = '╷'
		}
	}
}

// drawSnow drifts a fixed flake pattern down one row every two seconds.
func (o *Overlay) drawSnow(grid [][]rune, width, height int) {
	shift := int(o.elapsed / (2 * time.Second))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if flake(x, y-shift) {
				grid[y][x] = '·'
			}
		}
	}
}

// flake is a cheap deterministic hash that lights roughly 1 in 40 cells.
func flake(x, y int) bool {
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	return h%40 == 0
}
