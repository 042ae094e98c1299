package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/theirongolddev/tripbook/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "AIzaSyAb...wxyz", maskAPIKey("AIzaSyAbcdefghijklmnopwxyz"))
	assert.Equal(t, "abcd...", maskAPIKey("abcdefgh"))
	assert.Equal(t, "****", maskAPIKey("abc"))
}

func TestLoadDocument(t *testing.T) {
	doc, err := loadDocument(nil, false)
	require.NoError(t, err)
	assert.Nil(t, doc)

	doc, err = loadDocument(nil, true)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.NotEmpty(t, doc.Text)

	_, err = loadDocument([]string{"trip.pdf"}, false)
	assert.Error(t, err)
}

func TestPrintBooklet(t *testing.T) {
	data := &model.BookletData{
		Destination: "Lisbon",
		TotalSpend:  300,
		SpendBreakdown: []model.SpendCategory{
			{Category: "Food", Amount: 100},
			{Category: "Lodging", Amount: 200},
		},
		Days: []model.DayItinerary{
			{
				Date:    "May 1",
				Weather: model.Sunny,
				Events:  []model.ItineraryEvent{{Time: "09:00 AM", Description: "Tram 28", Location: "Alfama"}},
			},
			{Date: "May 2", Weather: model.Cloudy},
		},
	}

	var buf bytes.Buffer
	printBooklet(&buf, data)
	out := buf.String()

	assert.Contains(t, out, "LISBON")
	assert.Contains(t, out, "$300")
	assert.Contains(t, out, "Tram 28")
	assert.Contains(t, out, "Free day! No events scheduled.")
	assert.Contains(t, out, model.FallbackHighlight)
	assert.Less(t, strings.Index(out, "Lodging"), strings.Index(out, "Food"), "breakdown sorted by amount")
	assert.NotContains(t, out, "adds up to")
}
