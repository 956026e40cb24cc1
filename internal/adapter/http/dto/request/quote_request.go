package request

import (
	"errors"
	"strings"

	"salon_campeche/internal/domain/entities"
)

var (
	ErrInvalidVenueType = errors.New("invalid venue type")
	ErrInvalidTableType = errors.New("invalid table type")
)

// QuoteRequest is the intake snapshot the browser posts on every form
// mutation. Everything is optional at the transport level; the validator
// decides what is missing.
type QuoteRequest struct {
	GuestCount       int            `json:"guest_count"`
	EventDate        string         `json:"event_date"`
	EventType        string         `json:"event_type"`
	VenueType        string         `json:"venue_type"`
	TableType        string         `json:"table_type"`
	ClientName       string         `json:"client_name"`
	Notes            string         `json:"notes"`
	SelectedServices map[string]int `json:"selected_services"`
}

// ResolveVenueType rejects venue values outside the two physical
// configurations before they reach the domain.
func (r QuoteRequest) ResolveVenueType() (entities.VenueType, error) {
	switch v := entities.VenueType(strings.TrimSpace(r.VenueType)); v {
	case "", entities.VenueFirstFloor, entities.VenueBothFloors:
		return v, nil
	default:
		return "", ErrInvalidVenueType
	}
}

func (r QuoteRequest) ResolveTableType() (entities.TableType, error) {
	switch t := entities.TableType(strings.TrimSpace(r.TableType)); t {
	case "", entities.TablesPlain, entities.TablesDressed:
		return t, nil
	default:
		return "", ErrInvalidTableType
	}
}

// ToIntake translates the payload into the domain intake record.
func (r QuoteRequest) ToIntake() (entities.QuoteIntake, error) {
	venue, err := r.ResolveVenueType()
	if err != nil {
		return entities.QuoteIntake{}, err
	}
	table, err := r.ResolveTableType()
	if err != nil {
		return entities.QuoteIntake{}, err
	}

	return entities.QuoteIntake{
		GuestCount:       r.GuestCount,
		EventDate:        strings.TrimSpace(r.EventDate),
		EventType:        strings.TrimSpace(r.EventType),
		VenueType:        venue,
		TableType:        table,
		ClientName:       strings.TrimSpace(r.ClientName),
		Notes:            strings.TrimSpace(r.Notes),
		SelectedServices: r.SelectedServices,
	}, nil
}
