package bus

import "time"

// Namespaces used as subscription prefixes.
const (
	NamespaceState = "state."
)

// Event kinds published when AppState changes.
const (
	TabChanged     = "state.tab_changed"
	SearchChanged  = "state.search_changed"
	ChatSelected   = "state.chat_selected"
	PremiumChanged = "state.premium_changed"
)

// Event represents a UI state change published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// NewEvent stamps an event with the current time.
func NewEvent(kind string, payload any) Event {
	return Event{Kind: kind, Timestamp: time.Now(), Payload: payload}
}
