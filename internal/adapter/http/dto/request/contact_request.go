package request

import (
	"strings"

	"salon_campeche/internal/domain/entities"
)

// ContactRequest is the contact-page form payload.
type ContactRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	EventDate  string   `json:"event_date"`
	EventType  string   `json:"event_type"`
	GuestCount int      `json:"guest_count"`
	Message    string   `json:"message"`
	Services   []string `json:"services"`
}

func (r ContactRequest) ToForm() entities.ContactForm {
	return entities.ContactForm{
		Name:       strings.TrimSpace(r.Name),
		Email:      strings.TrimSpace(r.Email),
		Phone:      strings.TrimSpace(r.Phone),
		EventDate:  strings.TrimSpace(r.EventDate),
		EventType:  strings.TrimSpace(r.EventType),
		GuestCount: r.GuestCount,
		Message:    r.Message,
		Services:   r.Services,
	}
}
