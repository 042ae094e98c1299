package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	var nilBooklet *BookletData
	assert.Equal(t, 1, nilBooklet.TotalPages())

	b := &BookletData{}
	assert.Equal(t, 1, b.TotalPages())

	b.Days = make([]DayItinerary, 4)
	assert.Equal(t, 5, b.TotalPages())
}

func TestSpendConsistent(t *testing.T) {
	b := &BookletData{
		TotalSpend: 300,
		SpendBreakdown: []SpendCategory{
			{Category: "Airfare", Amount: 200},
			{Category: "Food", Amount: 100},
		},
	}
	assert.InDelta(t, 300.0, b.BreakdownTotal(), 1e-9)
	assert.True(t, b.SpendConsistent(0.01))

	b.TotalSpend = 350
	assert.False(t, b.SpendConsistent(0.01))
	assert.Equal(t, []string{"Airfare", "Food"}, b.Categories())
}

func TestHighlightsOrFallback(t *testing.T) {
	d := DayItinerary{}
	assert.Equal(t, []string{FallbackHighlight}, d.HighlightsOrFallback())

	d.Highlights = []string{"a", "b"}
	assert.Equal(t, []string{"a", "b"}, d.HighlightsOrFallback())
}

func TestWeatherUnmarshal(t *testing.T) {
	var w Weather
	require.NoError(t, json.Unmarshal([]byte(`"Rainy"`), &w))
	assert.Equal(t, Rainy, w)

	assert.Error(t, json.Unmarshal([]byte(`"Foggy"`), &w))
	assert.Error(t, json.Unmarshal([]byte(`"rainy"`), &w))
	assert.Error(t, json.Unmarshal([]byte(`3`), &w))
}

func TestWeatherValid(t *testing.T) {
	for _, w := range AllWeather {
		assert.True(t, w.Valid(), w)
	}
	assert.False(t, Weather("Windy").Valid())
	assert.False(t, Weather("").Valid())
}

func TestEventKind(t *testing.T) {
	cases := []struct {
		desc string
		want EventKind
	}{
		{"Flight to Bangkok", EventTransport},
		{"Airport transfer", EventTransport},
		{"Check-in at riverside hotel", EventLodging},
		{"Room service breakfast", EventLodging},
		{"Street FOOD tour", EventFood},
		{"Dinner cruise", EventFood},
		{"Chatuchak weekend shopping", EventShopping},
		{"Grand Palace", EventSightseeing},
		{"", EventSightseeing},
		{"Night train, then dinner", EventTransport},
	}
	for _, c := range cases {
		got := ItineraryEvent{Description: c.desc}.Kind()
		assert.Equal(t, c.want, got, c.desc)
	}
	assert.Equal(t, "food", EventFood.String())
	assert.Equal(t, "sightseeing", EventKind(99).String())
}
