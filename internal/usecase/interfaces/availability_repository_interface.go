package interfaces

import "salon_campeche/internal/domain/entities"

//go:generate mockgen -source=availability_repository_interface.go -destination=mocks/availability_repository_mock.go -package=mock_interfaces

// IAvailabilityRepository abstracts the occupied-dates calendar. The current
// implementation is a compiled-in list; a future booking backend would slot
// in behind the same interface.

type IAvailabilityRepository interface {
	ListUnavailable() []entities.DateAvailability
	FindByDate(date string) (entities.DateAvailability, bool)
}
