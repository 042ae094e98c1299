package session

import (
	"testing"

	"github.com/theirongolddev/tripbook/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNavigator_Pages(t *testing.T) {
	for days := 0; days <= 6; days++ {
		n := NewNavigator(days)
		assert.Equal(t, days+1, n.TotalPages())
		assert.True(t, n.IsCover())
		assert.Equal(t, -1, n.DayIndex())

		for i := 0; i < n.TotalPages()-1; i++ {
			assert.True(t, n.Next())
			assert.Equal(t, i, n.DayIndex())
		}
		assert.Equal(t, n.TotalPages()-1, n.Page())
		assert.True(t, n.IsLast())
		assert.True(t, n.CanFinish())

		assert.False(t, n.Next(), "next saturates")
		assert.Equal(t, n.TotalPages()-1, n.Page())
	}
}

func TestNavigator_PreviousSaturates(t *testing.T) {
	n := NewNavigator(2)
	assert.False(t, n.Previous())
	assert.Equal(t, 0, n.Page())

	n.Next()
	n.Next()
	assert.True(t, n.Previous())
	assert.True(t, n.Previous())
	assert.False(t, n.Previous())
	assert.True(t, n.IsCover())
}

func TestNavigator_NoDays(t *testing.T) {
	n := NewNavigator(0)
	assert.Equal(t, 1, n.TotalPages())
	assert.True(t, n.IsCover())
	assert.True(t, n.IsLast())
	assert.True(t, n.CanFinish())
	assert.False(t, n.Next())

	assert.Equal(t, 1, NewNavigator(-3).TotalPages())
}

func TestNavigator_FinishOnlyOnLast(t *testing.T) {
	n := NewNavigator(3)
	for !n.IsLast() {
		assert.False(t, n.CanFinish())
		n.Next()
	}
	assert.True(t, n.CanFinish())
}

func TestRotator_AdvanceCycles(t *testing.T) {
	for l := 1; l <= 5; l++ {
		items := make([]string, l)
		for i := range items {
			items[i] = string(rune('a' + i))
		}
		r := NewRotator(items)
		for i := 0; i < l; i++ {
			r.Advance()
		}
		assert.Equal(t, 0, r.Index(), "L=%d", l)
	}
}

func TestRotator_RetreatInverse(t *testing.T) {
	r := NewRotator([]string{"a", "b", "c", "d"})
	for start := 0; start < r.Len(); start++ {
		for r.Index() != start {
			r.Advance()
		}
		r.Advance()
		r.Retreat()
		assert.Equal(t, start, r.Index())
		r.Retreat()
		r.Advance()
		assert.Equal(t, start, r.Index())
	}

	r = NewRotator([]string{"a", "b", "c"})
	r.Retreat()
	assert.Equal(t, 2, r.Index())
	assert.Equal(t, "c", r.Current())
}

func TestRotator_Single(t *testing.T) {
	r := NewRotator([]string{"only"})
	r.Advance()
	assert.Equal(t, 0, r.Index())
	r.Retreat()
	assert.Equal(t, 0, r.Index())
	assert.False(t, r.HasControls())
}

func TestRotator_EmptyUsesFallback(t *testing.T) {
	r := NewRotator(nil)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, model.FallbackHighlight, r.Current())
}

func TestRotator_CopiesInput(t *testing.T) {
	in := []string{"a", "b"}
	r := NewRotator(in)
	in[0] = "changed"
	assert.Equal(t, "a", r.Current())

	items := r.Items()
	items[1] = "changed"
	r.Advance()
	assert.Equal(t, "b", r.Current())
}

func TestRotator_Generations(t *testing.T) {
	r := NewRotator([]string{"a", "b"})
	gen := r.Generation()

	assert.True(t, r.Tick(gen))
	assert.Equal(t, 1, r.Index())
	assert.False(t, r.Tick(gen), "stale generation")

	gen = r.Generation()
	r.Rearm()
	assert.False(t, r.Tick(gen))
	assert.Equal(t, 1, r.Index())

	r.Restart()
	assert.Equal(t, 0, r.Index())
	assert.True(t, r.Tick(r.Generation()))
}
