package response

import "salon_campeche/internal/domain/entities"

type DateAvailabilityResponse struct {
	Date        string `json:"date"`
	IsAvailable bool   `json:"is_available"`
	Reason      string `json:"reason,omitempty"`
	EventType   string `json:"event_type,omitempty"`
	Note        string `json:"note,omitempty"`
}

type UnavailableDatesResponse struct {
	Dates []DateAvailabilityResponse `json:"dates"`
}

func FromDateAvailability(d entities.DateAvailability) DateAvailabilityResponse {
	return DateAvailabilityResponse{
		Date:        d.Date,
		IsAvailable: d.IsAvailable,
		Reason:      d.Reason,
		EventType:   d.EventType,
		Note:        d.Note,
	}
}

func FromDateAvailabilities(dates []entities.DateAvailability) UnavailableDatesResponse {
	out := make([]DateAvailabilityResponse, 0, len(dates))
	for _, d := range dates {
		out = append(out, FromDateAvailability(d))
	}
	return UnavailableDatesResponse{Dates: out}
}
