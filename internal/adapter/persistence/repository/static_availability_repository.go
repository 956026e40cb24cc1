package repository

import (
	"salon_campeche/internal/domain/entities"
	"salon_campeche/internal/usecase/interfaces"
)

// StaticAvailabilityRepository serves the occupied-dates calendar. The list
// is maintained by hand and shipped with each deploy; a real booking backend
// is out of scope and every date is reconfirmed over WhatsApp anyway.

type StaticAvailabilityRepository struct {
	occupied []entities.DateAvailability
	byDate   map[string]entities.DateAvailability
}

var _ interfaces.IAvailabilityRepository = (*StaticAvailabilityRepository)(nil)

func NewStaticAvailabilityRepository() *StaticAvailabilityRepository {
	byDate := make(map[string]entities.DateAvailability, len(unavailableDates))
	for _, d := range unavailableDates {
		byDate[d.Date] = d
	}
	return &StaticAvailabilityRepository{occupied: unavailableDates, byDate: byDate}
}

func (r *StaticAvailabilityRepository) ListUnavailable() []entities.DateAvailability {
	out := make([]entities.DateAvailability, len(r.occupied))
	copy(out, r.occupied)
	return out
}

func (r *StaticAvailabilityRepository) FindByDate(date string) (entities.DateAvailability, bool) {
	d, ok := r.byDate[date]
	return d, ok
}

var unavailableDates = []entities.DateAvailability{
	{Date: "2025-02-14", Reason: "Boda San Valentín", EventType: "Boda"},
	{Date: "2025-02-22", Reason: "XV Años María", EventType: "XV Años"},
	{Date: "2025-03-08", Reason: "Evento Corporativo", EventType: "Corporativo"},
	{Date: "2025-03-15", Reason: "Cumpleaños 50 años", EventType: "Cumpleaños"},
	{Date: "2025-03-22", Reason: "Boda Primavera", EventType: "Boda"},
	{Date: "2025-04-12", Reason: "XV Años Abril", EventType: "XV Años"},
	{Date: "2025-04-19", Reason: "Baby Shower", EventType: "Baby Shower"},
	{Date: "2025-05-10", Reason: "Día de las Madres", EventType: "Celebración"},
	{Date: "2025-05-24", Reason: "Graduación", EventType: "Graduación"},
}
