package contract

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/theirongolddev/tripbook/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPayload = `{
  "destination": "Thailand Trip",
  "totalSpend": 2400,
  "spendBreakdown": [
    {"category": "Airfare", "amount": 1800},
    {"category": "Food", "amount": 600}
  ],
  "days": [
    {
      "date": "11/1/2025",
      "weather": "Sunny",
      "highlights": ["Golden spires glow at sunrise."],
      "events": [
        {"time": "9:00", "description": "Grand Palace", "location": "Bangkok"},
        {"description": "Street food crawl"}
      ]
    },
    {
      "date": "11/2/2025",
      "weather": "Rainy",
      "highlights": [],
      "events": []
    }
  ]
}`

func TestDecode_Valid(t *testing.T) {
	data, err := Decode([]byte(validPayload))
	require.NoError(t, err)

	assert.Equal(t, "Thailand Trip", data.Destination)
	assert.InDelta(t, 2400, data.TotalSpend, 0.001)
	require.Len(t, data.SpendBreakdown, 2)
	assert.Equal(t, "Airfare", data.SpendBreakdown[0].Category)
	require.Len(t, data.Days, 2)
	assert.Equal(t, model.Sunny, data.Days[0].Weather)
	assert.Equal(t, "Bangkok", data.Days[0].Events[0].Location)
	assert.Empty(t, data.Days[0].Events[1].Time)
	assert.Equal(t, 3, data.TotalPages())
}

func TestDecode_EmptyHighlightsGetFallback(t *testing.T) {
	data, err := Decode([]byte(validPayload))
	require.NoError(t, err)

	assert.Equal(t, []string{"Golden spires glow at sunrise."}, data.Days[0].Highlights)
	assert.Equal(t, []string{model.FallbackHighlight}, data.Days[1].Highlights)
}

func TestDecode_NoDays(t *testing.T) {
	data, err := Decode([]byte(`{"destination":"X","totalSpend":0,"spendBreakdown":[],"days":[]}`))
	require.NoError(t, err)
	assert.Empty(t, data.Days)
	assert.Equal(t, 1, data.TotalPages())
}

func TestDecode_Malformed(t *testing.T) {
	mutate := func(fn func(m map[string]any)) string {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(validPayload), &m))
		fn(m)
		out, err := json.Marshal(m)
		require.NoError(t, err)
		return string(out)
	}
	day := func(m map[string]any, i int) map[string]any {
		return m["days"].([]any)[i].(map[string]any)
	}

	cases := map[string]string{
		"empty":             "",
		"whitespace":        "  \n",
		"not json":          "Sorry, I can't help with that.",
		"trailing data":     validPayload + " {}",
		"array":             "[]",
		"missing days":      mutate(func(m map[string]any) { delete(m, "days") }),
		"missing total":     mutate(func(m map[string]any) { delete(m, "totalSpend") }),
		"total as string":   mutate(func(m map[string]any) { m["totalSpend"] = "2400" }),
		"weather not enum":  mutate(func(m map[string]any) { day(m, 0)["weather"] = "Stormy" }),
		"weather lowercase": mutate(func(m map[string]any) { day(m, 0)["weather"] = "sunny" }),
		"missing events":    mutate(func(m map[string]any) { delete(day(m, 1), "events") }),
		"missing highlights": mutate(func(m map[string]any) {
			delete(day(m, 0), "highlights")
		}),
		"event without description": mutate(func(m map[string]any) {
			day(m, 0)["events"] = []any{map[string]any{"time": "9:00"}}
		}),
		"negative amount": mutate(func(m map[string]any) {
			m["spendBreakdown"] = []any{map[string]any{"category": "Food", "amount": -1}}
		}),
		"duplicate category": mutate(func(m map[string]any) {
			m["spendBreakdown"] = []any{
				map[string]any{"category": "Food", "amount": 1},
				map[string]any{"category": "Food", "amount": 2},
			}
		}),
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			data, err := Decode([]byte(payload))
			assert.Nil(t, data)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	payload := strings.Replace(validPayload, `"destination"`, `"note": "extra", "destination"`, 1)
	data, err := Decode([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "Thailand Trip", data.Destination)
}

func TestValidate_Nil(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrMalformedResponse)
}

func TestValidate_ReportsWireNames(t *testing.T) {
	err := Validate(&model.BookletData{
		Days: []model.DayItinerary{{Date: "d", Weather: "Foggy"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "days[0].weather")
}

func TestResponseSchema_MatchesWeatherEnum(t *testing.T) {
	days := ResponseSchema.Properties["days"].Items
	assert.Equal(t, []string{"Sunny", "Rainy", "Cloudy", "Snowy"}, days.Properties["weather"].Enum)
	assert.ElementsMatch(t, []string{"date", "weather", "highlights", "events"}, days.Required)

	out, err := json.Marshal(ResponseSchema)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"propertyOrdering":["destination","totalSpend","spendBreakdown","days"]`)
}

func TestPrompt(t *testing.T) {
	p := Prompt(",,Thailand Trip,,\n11/1/2025,,,9:00,Grand Palace")

	assert.Contains(t, p, "merged cell C1")
	assert.Contains(t, p, "T = Transportation")
	assert.Contains(t, p, "R = Recreation")
	assert.Contains(t, p, "sparse")
	assert.True(t, strings.HasSuffix(p, "11/1/2025,,,9:00,Grand Palace\n"))
	assert.NotContains(t, p, "%!")
}
