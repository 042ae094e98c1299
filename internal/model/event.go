package model

import "strings"

// EventKind is a coarse classification of an event, used to pick its icon.
type EventKind int

const (
	EventSightseeing EventKind = iota
	EventTransport
	EventLodging
	EventFood
	EventShopping
)

// Checked in order; the first kind with a matching keyword wins.
var eventKeywords = []struct {
	kind     EventKind
	keywords []string
}{
	{EventTransport, []string{"flight", "airport", "train"}},
	{EventLodging, []string{"hotel", "check-in", "room"}},
	{EventFood, []string{"eat", "dinner", "lunch", "breakfast", "food"}},
	{EventShopping, []string{"shop", "store", "mall"}},
}

// Kind classifies the event by keywords in its description. Events that
// match nothing are sightseeing.
func (e ItineraryEvent) Kind() EventKind {
	desc := strings.ToLower(e.Description)
	for _, ek := range eventKeywords {
		for _, kw := range ek.keywords {
			if strings.Contains(desc, kw) {
				return ek.kind
			}
		}
	}
	return EventSightseeing
}

func (k EventKind) String() string {
	switch k {
	case EventTransport:
		return "transport"
	case EventLodging:
		return "lodging"
	case EventFood:
		return "food"
	case EventShopping:
		return "shopping"
	default:
		return "sightseeing"
	}
}
