package entities

// DateAvailability answers "can I book this date" for the availability
// calendar. Occupied dates come from a compiled-in list; Reason and EventType
// are only set for occupied dates. Note carries advisory text (weekday
// discounts) without affecting availability.
type DateAvailability struct {
	Date        string `json:"date"` // YYYY-MM-DD
	IsAvailable bool   `json:"is_available"`
	Reason      string `json:"reason,omitempty"`
	EventType   string `json:"event_type,omitempty"`
	Note        string `json:"note,omitempty"`
}
