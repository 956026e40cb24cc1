package entities

import "time"

// QuoteItem is one priced line of a quote.
//
// ServiceName and Description are denormalized at build time so a downloaded
// quote stays stable even if the catalog changes in a later deploy. The
// description may carry calculation context ("Calculado para N personas").
type QuoteItem struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Description string  `json:"description,omitempty"`
}

// Quote is the immutable result of a valid intake.
//
// Invariants:
//   - Items are ordered venue first, then tables, then add-ons in catalog
//     iteration order.
//   - Subtotal == Total == sum of item totals (no taxes or discounts).
//   - AdvancePayment == Total * 0.5 (the 50% deposit policy).
type Quote struct {
	ID             string      `json:"id"`
	Items          []QuoteItem `json:"items"`
	Subtotal       float64     `json:"subtotal"`
	Total          float64     `json:"total"`
	AdvancePayment float64     `json:"advance_payment"`
	EventDate      string      `json:"event_date,omitempty"`
	GuestCount     int         `json:"guest_count"`
	Notes          string      `json:"notes,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// QuoteComputation is the full output of one recomputation pass: the quote
// when the intake is ready and valid, otherwise nil, always alongside the
// validator output and the advisory recommendations. Errors and
// recommendations render independently; neither blocks the other.
type QuoteComputation struct {
	Ready           bool              `json:"ready"`
	Quote           *Quote            `json:"quote,omitempty"`
	Errors          []ValidationError `json:"errors"`
	Warnings        []ValidationError `json:"warnings"`
	Recommendations []string          `json:"recommendations"`
}

// ShareLink is a rendered WhatsApp handoff: the prefilled message and the
// wa.me deep link that opens it. Opening the link is the only "submission"
// mechanism in the whole system.
type ShareLink struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}
