package pipeline

import (
	"sort"

	"github.com/theirongolddev/tripbook/internal/model"
)

// CategoryShare is one breakdown entry with its fraction of the breakdown total.
type CategoryShare struct {
	Category string
	Amount   float64
	Share    float64 // 0.0-1.0
}

// Summary holds statistics derived from a booklet for display.
type Summary struct {
	Destination    string
	TotalSpend     float64
	BreakdownTotal float64
	Consistent     bool
	Shares         []CategoryShare // breakdown order
	Largest        string
	Days           int
	Events         int
	FreeDays       int
	WeatherDays    map[model.Weather]int
}

// ConsistencyTolerance is the allowed gap between the reported total and the
// breakdown sum before a summary is flagged inconsistent.
const ConsistencyTolerance = 0.01

// Summarize computes display statistics. It does not modify b.
func Summarize(b *model.BookletData) Summary {
	s := Summary{WeatherDays: make(map[model.Weather]int)}
	if b == nil {
		s.Consistent = true
		return s
	}

	s.Destination = b.Destination
	s.TotalSpend = b.TotalSpend
	s.BreakdownTotal = b.BreakdownTotal()
	s.Consistent = b.SpendConsistent(ConsistencyTolerance)

	var largest float64
	s.Shares = make([]CategoryShare, 0, len(b.SpendBreakdown))
	for _, c := range b.SpendBreakdown {
		cs := CategoryShare{Category: c.Category, Amount: c.Amount}
		if s.BreakdownTotal > 0 {
			cs.Share = c.Amount / s.BreakdownTotal
		}
		s.Shares = append(s.Shares, cs)
		if s.Largest == "" || c.Amount > largest {
			s.Largest = c.Category
			largest = c.Amount
		}
	}

	s.Days = len(b.Days)
	for _, d := range b.Days {
		s.Events += len(d.Events)
		if len(d.Events) == 0 {
			s.FreeDays++
		}
		s.WeatherDays[d.Weather]++
	}
	return s
}

// SharesByAmount returns the shares sorted descending by amount, ties broken
// by category name. The summary itself is left in breakdown order.
func (s Summary) SharesByAmount() []CategoryShare {
	out := make([]CategoryShare, len(s.Shares))
	copy(out, s.Shares)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out
}
