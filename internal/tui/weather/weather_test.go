package weather

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/tripbook/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreatmentFor(t *testing.T) {
	sunny := TreatmentFor(model.Sunny)
	assert.True(t, sunny.Glow)
	assert.Equal(t, OverlayNone, sunny.Overlay)

	assert.Equal(t, OverlayRain, TreatmentFor(model.Rainy).Overlay)
	assert.Equal(t, OverlayNone, TreatmentFor(model.Cloudy).Overlay)
	assert.Equal(t, OverlaySnow, TreatmentFor(model.Snowy).Overlay)

	for _, w := range model.AllWeather {
		tr := TreatmentFor(w)
		assert.NotEmpty(t, tr.Gradient, w)
		assert.Equal(t, w.String(), tr.Label)
		assert.NotEmpty(t, tr.Icon)
	}

	odd := TreatmentFor("Foggy")
	assert.Equal(t, "Foggy", odd.Label)
	assert.Equal(t, OverlayNone, odd.Overlay)
}

func TestOverlay_RainGeneratesFiftyParticles(t *testing.T) {
	o := NewOverlay(rand.New(rand.NewSource(1)))
	o.Set(model.Rainy)

	ps := o.Particles()
	require.Len(t, ps, RainDrops)
	assert.Equal(t, 50, RainDrops)

	distinctX := map[float64]struct{}{}
	for _, p := range ps {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 1.0)
		assert.GreaterOrEqual(t, p.Duration, 500*time.Millisecond)
		assert.LessOrEqual(t, p.Duration, time.Second)
		assert.GreaterOrEqual(t, p.Delay, time.Duration(0))
		assert.LessOrEqual(t, p.Delay, 2*time.Second)
		distinctX[p.X] = struct{}{}
	}
	assert.Greater(t, len(distinctX), 40, "positions are sampled independently")
}

func TestOverlay_ClearedForOtherWeather(t *testing.T) {
	o := NewOverlay(rand.New(rand.NewSource(2)))
	for _, w := range []model.Weather{model.Sunny, model.Cloudy, model.Snowy} {
		o.Set(model.Rainy)
		require.Len(t, o.Particles(), RainDrops)
		o.Set(w)
		assert.Empty(t, o.Particles(), "switching to %s", w)
		assert.Equal(t, w, o.Weather())
	}

	o.Set(model.Rainy)
	o.Clear()
	assert.Empty(t, o.Particles())
}

func TestOverlay_RegeneratedOnReactivation(t *testing.T) {
	o := NewOverlay(rand.New(rand.NewSource(3)))
	o.Set(model.Rainy)
	first := o.Particles()

	o.Set(model.Rainy)
	assert.Equal(t, first, o.Particles(), "same value keeps the set")

	o.Set(model.Sunny)
	o.Set(model.Rainy)
	second := o.Particles()
	require.Len(t, second, RainDrops)
	assert.NotEqual(t, first, second)
}

func TestOverlay_FrameDimensions(t *testing.T) {
	o := NewOverlay(rand.New(rand.NewSource(4)))
	o.Set(model.Rainy)
	o.Step(3 * time.Second)

	frame := o.Frame(30, 6)
	require.Len(t, frame, 6)
	drops := 0
	for _, row := range frame {
		assert.Equal(t, 30, len([]rune(row)))
		drops += strings.Count(row, "│")
	}
	assert.Positive(t, drops, "every drop has started after 2s")

	assert.Nil(t, o.Frame(0, 5))
}

func TestOverlay_SunnyFrameBlank(t *testing.T) {
	o := NewOverlay(nil)
	o.Set(model.Sunny)
	assert.False(t, o.Animated())
	for _, row := range o.Frame(10, 3) {
		assert.Equal(t, strings.Repeat(" ", 10), row)
	}
}

func TestOverlay_SnowDrifts(t *testing.T) {
	o := NewOverlay(nil)
	o.Set(model.Snowy)
	assert.True(t, o.Animated())
	assert.Empty(t, o.Particles())

	before := strings.Join(o.Frame(80, 10), "\n")
	o.Step(2 * time.Second)
	after := strings.Join(o.Frame(80, 10), "\n")
	assert.Contains(t, before, "·")
	assert.NotEqual(t, before, after)
}

func TestRowColors(t *testing.T) {
	stops := []lipgloss.Color{"#000000", "#ffffff"}
	rows := RowColors(stops, 5)
	require.Len(t, rows, 5)
	assert.Equal(t, lipgloss.Color("#000000"), rows[0])
	assert.Equal(t, lipgloss.Color("#ffffff"), rows[4])
	assert.NotEqual(t, rows[1], rows[3])

	assert.Nil(t, RowColors(stops, 0))
	assert.Equal(t, []lipgloss.Color{"#000000", "#000000"}, RowColors(stops[:1], 2))
	assert.Equal(t, []lipgloss.Color{"3", "3"}, RowColors([]lipgloss.Color{"3", "4"}, 2))
}

func TestPaint(t *testing.T) {
	out := Paint("hello\nworld", TreatmentFor(model.Cloudy), 12, 4)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, 12, lipgloss.Width(l))
	}
	assert.Contains(t, out, "hello")
}

func TestKeepBackground(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	inner := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Render("x")
	line := inner + " tail"

	out := KeepBackground(line, "#000000")
	assert.Contains(t, out, "\x1b[0m\x1b[48;2;0;0;0m tail")
	assert.Equal(t, "plain", KeepBackground("plain", "#000000"))
}
