// Package contract defines the structure the interpretation service must
// return and validates its responses into model.BookletData.
package contract

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripbook/internal/model"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema is the subset of the OpenAPI schema object accepted as a Gemini
// responseSchema.
type Schema struct {
	Type             string             `json:"type"`
	Description      string             `json:"description,omitempty"`
	Enum             []string           `json:"enum,omitempty"`
	Properties       map[string]*Schema `json:"properties,omitempty"`
	PropertyOrdering []string           `json:"propertyOrdering,omitempty"`
	Items            *Schema            `json:"items,omitempty"`
	Required         []string           `json:"required,omitempty"`
}

func weatherValues() []string {
	out := make([]string, len(model.AllWeather))
	for i, w := range model.AllWeather {
		out[i] = string(w)
	}
	return out
}

// ResponseSchema is sent with every interpretation request.
var ResponseSchema = &Schema{
	Type: "OBJECT",
	Properties: map[string]*Schema{
		"destination": {
			Type:        "STRING",
			Description: "Trip title or main location, taken from merged cell C1 (row 1, column 3).",
		},
		"totalSpend": {
			Type:        "NUMBER",
			Description: "Sum of the total cost column (column L) over all rows.",
		},
		"spendBreakdown": {
			Type:        "ARRAY",
			Description: "Total cost (column L) grouped by the category decoded from column J.",
			Items: &Schema{
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"category": {Type: "STRING"},
					"amount":   {Type: "NUMBER"},
				},
				PropertyOrdering: []string{"category", "amount"},
				Required:         []string{"category", "amount"},
			},
		},
		"days": {
			Type:        "ARRAY",
			Description: "One entry per itinerary day, in sheet order.",
			Items: &Schema{
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"date": {
						Type:        "STRING",
						Description: "Day label from column A, e.g. 'Oct 12' or '11/1/2025'.",
					},
					"weather": {
						Type:        "STRING",
						Enum:        weatherValues(),
						Description: "Plausible weather for the location and season.",
					},
					"highlights": {
						Type:        "ARRAY",
						Description: "Three or four distinct, engaging highlight sentences, including review-style snippets for venues.",
						Items:       &Schema{Type: "STRING"},
					},
					"events": {
						Type: "ARRAY",
						Items: &Schema{
							Type: "OBJECT",
							Properties: map[string]*Schema{
								"time":        {Type: "STRING", Description: "Start time from column D."},
								"description": {Type: "STRING", Description: "Activity from column E."},
								"location":    {Type: "STRING", Description: "Venue or place named in column E, if any."},
							},
							PropertyOrdering: []string{"time", "description", "location"},
							Required:         []string{"description"},
						},
					},
				},
				PropertyOrdering: []string{"date", "weather", "highlights", "events"},
				Required:         []string{"date", "weather", "highlights", "events"},
			},
		},
	},
	PropertyOrdering: []string{"destination", "totalSpend", "spendBreakdown", "days"},
	Required:         []string{"destination", "totalSpend", "spendBreakdown", "days"},
}

const schemaURL = "https://tripbook.local/schemas/booklet.schema.json"

// JSONSchema mirrors ResponseSchema in JSON Schema (draft 2020-12) terms. It is what
// responses are actually checked against.
var JSONSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["destination", "totalSpend", "spendBreakdown", "days"],
  "properties": {
    "destination": {"type": "string"},
    "totalSpend": {"type": "number"},
    "spendBreakdown": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["category", "amount"],
        "properties": {
          "category": {"type": "string"},
          "amount": {"type": "number", "minimum": 0}
        }
      }
    },
    "days": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["date", "weather", "highlights", "events"],
        "properties": {
          "date": {"type": "string"},
          "weather": {"enum": [` + quoteAll(weatherValues()) + `]},
          "highlights": {"type": "array", "items": {"type": "string"}},
          "events": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["description"],
              "properties": {
                "time": {"type": "string"},
                "description": {"type": "string"},
                "location": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

var compiledSchema = mustCompile()

func mustCompile() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, strings.NewReader(JSONSchema)); err != nil {
		panic(fmt.Sprintf("contract: loading booklet schema: %v", err))
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("contract: compiling booklet schema: %v", err))
	}
	return s
}

func quoteAll(vals []string) string {
	quoted := make([]string, len(vals))
	for i, v := range vals {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
