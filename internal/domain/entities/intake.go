package entities

// VenueType selects the physical rental configuration. It constrains the
// maximum guest count (150 for the first floor, 250 for both floors).

type VenueType string

const (
	VenueFirstFloor VenueType = "primer-piso"
	VenueBothFloors VenueType = "ambos-pisos"
)

// TableType selects the table service added to the quote. Leaving it empty
// (no tables) is a valid choice.

type TableType string

const (
	TablesPlain   TableType = "sencillas"
	TablesDressed TableType = "vestidas"
)

// EventTypes is the fixed list offered by the intake form.
var EventTypes = []string{
	"Boda",
	"XV Años",
	"Cumpleaños",
	"Baby Shower",
	"Aniversario",
	"Graduación",
	"Corporativo",
	"Otro",
}

// QuoteIntake is the visitor-provided form state a quote is computed from.
//
// Domain notes:
//   - Ephemeral per visitor session; it is never persisted. Every mutation
//     triggers a full recomputation that supersedes the previous quote.
//   - EventDate uses the YYYY-MM-DD form format; empty means undecided.
//   - SelectedServices maps service id -> quantity; a zero quantity is
//     equivalent to absence.
type QuoteIntake struct {
	GuestCount       int            `json:"guest_count"`
	EventDate        string         `json:"event_date,omitempty"`
	EventType        string         `json:"event_type,omitempty"`
	VenueType        VenueType      `json:"venue_type,omitempty"`
	TableType        TableType      `json:"table_type,omitempty"`
	ClientName       string         `json:"client_name,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	SelectedServices map[string]int `json:"selected_services,omitempty"`
}

// ValidationError is one triggered intake rule, addressed to a form field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormValidation is the validator outcome. Errors block quote construction;
// Warnings are advisory and never do.
type FormValidation struct {
	IsValid  bool              `json:"is_valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

// ContactForm is the contact-page submission. Like quotes, it is never
// persisted: a valid form is handed off as a prefilled WhatsApp message.
type ContactForm struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	EventDate  string   `json:"event_date,omitempty"`
	EventType  string   `json:"event_type"`
	GuestCount int      `json:"guest_count,omitempty"`
	Message    string   `json:"message"`
	Services   []string `json:"services,omitempty"`
}
