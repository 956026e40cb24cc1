package response

import (
	"time"

	"salon_campeche/internal/domain/entities"
)

type QuoteItemResponse struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Description string  `json:"description,omitempty"`
}

type QuoteResponse struct {
	QuoteID        string              `json:"quote_id"`
	Items          []QuoteItemResponse `json:"items"`
	Subtotal       float64             `json:"subtotal"`
	Total          float64             `json:"total"`
	AdvancePayment float64             `json:"advance_payment"`
	EventDate      string              `json:"event_date,omitempty"`
	GuestCount     int                 `json:"guest_count"`
	Notes          string              `json:"notes,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

type ValidationErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DerivedResponse echoes the pure derivations for the current guest count so
// the form can display them ("calculamos N mesas...") without re-implementing
// the rules client-side.
type DerivedResponse struct {
	TablesNeeded     int    `json:"tables_needed"`
	MinimumStaff     int    `json:"minimum_staff"`
	RecommendedVenue string `json:"recommended_venue"`
}

// QuoteComputationResponse is the full recomputation result. Quote is null
// whenever the intake is incomplete or invalid; errors and recommendations
// are independent lists the UI renders side by side.
type QuoteComputationResponse struct {
	Ready           bool                      `json:"ready"`
	Quote           *QuoteResponse            `json:"quote"`
	Errors          []ValidationErrorResponse `json:"errors"`
	Warnings        []ValidationErrorResponse `json:"warnings"`
	Recommendations []string                  `json:"recommendations"`
	Derived         *DerivedResponse          `json:"derived,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, QuoteItemResponse{
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
			Description: item.Description,
		})
	}
	return QuoteResponse{
		QuoteID:        q.ID,
		Items:          items,
		Subtotal:       q.Subtotal,
		Total:          q.Total,
		AdvancePayment: q.AdvancePayment,
		EventDate:      q.EventDate,
		GuestCount:     q.GuestCount,
		Notes:          q.Notes,
		CreatedAt:      q.CreatedAt,
	}
}

func FromQuoteComputation(comp entities.QuoteComputation, guestCount int) QuoteComputationResponse {
	res := QuoteComputationResponse{
		Ready:           comp.Ready,
		Errors:          fromValidationErrors(comp.Errors),
		Warnings:        fromValidationErrors(comp.Warnings),
		Recommendations: comp.Recommendations,
	}
	if res.Recommendations == nil {
		res.Recommendations = []string{}
	}
	if comp.Quote != nil {
		q := FromQuote(*comp.Quote)
		res.Quote = &q
	}
	if guestCount > 0 {
		res.Derived = &DerivedResponse{
			TablesNeeded:     entities.TablesNeeded(guestCount),
			MinimumStaff:     entities.MinimumStaff(guestCount),
			RecommendedVenue: string(entities.RecommendedVenue(guestCount)),
		}
	}
	return res
}

func fromValidationErrors(errs []entities.ValidationError) []ValidationErrorResponse {
	out := make([]ValidationErrorResponse, 0, len(errs))
	for _, e := range errs {
		out = append(out, ValidationErrorResponse{Field: e.Field, Message: e.Message})
	}
	return out
}
