package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestCategoryColors_FirstAppearanceOrder(t *testing.T) {
	got := CategoryColors([]string{"Airfare", "Food", "Housing"})
	assert.Equal(t, lipgloss.Color("#ef4444"), got["Airfare"])
	assert.Equal(t, lipgloss.Color("#3b82f6"), got["Food"])
	assert.Equal(t, lipgloss.Color("#10b981"), got["Housing"])
}

func TestCategoryColors_KeyedByIdentity(t *testing.T) {
	got := CategoryColors([]string{"Food", "Food", "Gifts"})
	assert.Len(t, got, 2)
	assert.Equal(t, CategoryPalette[0], got["Food"])
	assert.Equal(t, CategoryPalette[1], got["Gifts"])
}

func TestCategoryColors_Cycles(t *testing.T) {
	cats := make([]string, len(CategoryPalette)+1)
	for i := range cats {
		cats[i] = string(rune('a' + i))
	}
	got := CategoryColors(cats)
	assert.Equal(t, CategoryPalette[0], got[cats[len(cats)-1]])
}

func TestByName(t *testing.T) {
	assert.Equal(t, "tokyo-night", ByName("tokyo-night").Name)
	assert.Equal(t, Passport.Name, ByName("nope").Name)
	assert.Contains(t, Names(), "terminal")

	SetActive("flexoki-dark")
	t.Cleanup(func() { SetActive(Passport.Name) })
	assert.Equal(t, "flexoki-dark", Active.Name)
}
