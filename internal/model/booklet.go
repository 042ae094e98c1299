// Package model defines the booklet data contract shared by interpretation and rendering.
package model

import "math"

// FallbackHighlight is shown for a day whose interpretation produced no highlights.
const FallbackHighlight = "Enjoying the local atmosphere and relaxing."

// SpendCategory is one slice of the trip's spend breakdown.
type SpendCategory struct {
	Category string  `json:"category" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
}

// ItineraryEvent is one scheduled occurrence within a day.
// Ordering is whatever the producer emitted; it is not verified.
type ItineraryEvent struct {
	Time        string `json:"time,omitempty"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location,omitempty"`
}

// DayItinerary is a single page of the booklet.
// Date is a display label and is not necessarily a parseable calendar date.
type DayItinerary struct {
	Date       string           `json:"date"`
	Weather    Weather          `json:"weather" validate:"required,weather"`
	Events     []ItineraryEvent `json:"events" validate:"dive"`
	Highlights []string         `json:"highlights"`
}

// BookletData is the whole interpreted trip. It is built once per successful
// generation and replaced, never patched.
type BookletData struct {
	Destination    string          `json:"destination"`
	TotalSpend     float64         `json:"totalSpend"`
	SpendBreakdown []SpendCategory `json:"spendBreakdown" validate:"unique=Category,dive"`
	Days           []DayItinerary  `json:"days" validate:"dive"`
}

// TotalPages is the cover plus one page per day.
func (b *BookletData) TotalPages() int {
	if b == nil {
		return 1
	}
	return 1 + len(b.Days)
}

// BreakdownTotal sums the categorized spend. TotalSpend is reported as given
// by the producer; this is only used to check the two against each other.
func (b *BookletData) BreakdownTotal() float64 {
	if b == nil {
		return 0
	}
	var sum float64
	for _, c := range b.SpendBreakdown {
		sum += c.Amount
	}
	return sum
}

// SpendConsistent reports whether TotalSpend and the breakdown agree within tolerance.
func (b *BookletData) SpendConsistent(tolerance float64) bool {
	if b == nil {
		return true
	}
	return math.Abs(b.TotalSpend-b.BreakdownTotal()) <= tolerance
}

// Categories returns the category labels in display order.
func (b *BookletData) Categories() []string {
	if b == nil {
		return nil
	}
	out := make([]string, len(b.SpendBreakdown))
	for i, c := range b.SpendBreakdown {
		out[i] = c.Category
	}
	return out
}

// HighlightsOrFallback returns the day's highlights, substituting the fallback
// sentence when there are none. The returned slice is never empty.
func (d DayItinerary) HighlightsOrFallback() []string {
	if len(d.Highlights) == 0 {
		return []string{FallbackHighlight}
	}
	return d.Highlights
}
