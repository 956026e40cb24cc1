package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"salon_campeche/internal/domain/entities"
	"salon_campeche/internal/usecase/interfaces"
)

var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrDateInPast     = errors.New("date in the past")
	ErrDateTooFarOut  = errors.New("date beyond booking horizon")
)

// IAvailabilityUseCase answers calendar questions for the availability page.
// All validation here is advisory; the salon confirms every date by hand over
// WhatsApp.

type IAvailabilityUseCase interface {
	ListUnavailable(ctx context.Context) []entities.DateAvailability
	CheckDate(ctx context.Context, date string) (entities.DateAvailability, error)
}

type AvailabilityUseCase struct {
	repo interfaces.IAvailabilityRepository
	now  func() time.Time
}

var _ IAvailabilityUseCase = (*AvailabilityUseCase)(nil)

func NewAvailabilityUseCase(repo interfaces.IAvailabilityRepository) *AvailabilityUseCase {
	return &AvailabilityUseCase{repo: repo, now: time.Now}
}

func (u *AvailabilityUseCase) ListUnavailable(ctx context.Context) []entities.DateAvailability {
	return u.repo.ListUnavailable()
}

// CheckDate resolves a single date: malformed, past or further than two years
// out are rejected; an occupied date comes back unavailable with its reason;
// Mondays and Tuesdays carry a discount note.
func (u *AvailabilityUseCase) CheckDate(ctx context.Context, date string) (entities.DateAvailability, error) {
	date = strings.TrimSpace(date)
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return entities.DateAvailability{}, ErrInvalidDate
	}

	today := dateOnly(u.now())
	if day.Before(today) {
		return entities.DateAvailability{}, ErrDateInPast
	}
	if day.After(today.AddDate(maxAdvanceYears, 0, 0)) {
		return entities.DateAvailability{}, ErrDateTooFarOut
	}

	if occupied, ok := u.repo.FindByDate(date); ok {
		return occupied, nil
	}

	availability := entities.DateAvailability{Date: date, IsAvailable: true}
	if wd := day.Weekday(); wd == time.Monday || wd == time.Tuesday {
		availability.Note = "Los lunes y martes tienen descuentos especiales"
	}
	return availability, nil
}
