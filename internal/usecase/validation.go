package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"salon_campeche/internal/domain/entities"
)

const (
	maxCapacity        = 250
	firstFloorCapacity = 150
	minAdvanceDays     = 7
	maxAdvanceYears    = 2
)

const dateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
var nonDigits = regexp.MustCompile(`\D`)

// validateIntake applies every quote-form rule and returns the union of what
// triggered. Rules are independent; blocking errors and advisory warnings are
// kept apart so only the former prevent quote construction.
func validateIntake(intake entities.QuoteIntake, today time.Time) entities.FormValidation {
	var errs, warns []entities.ValidationError

	if intake.GuestCount <= 0 {
		errs = append(errs, entities.ValidationError{
			Field:   "guestCount",
			Message: "El número de invitados es requerido y debe ser mayor a 0",
		})
	} else if intake.GuestCount > maxCapacity {
		errs = append(errs, entities.ValidationError{
			Field:   "guestCount",
			Message: "La capacidad máxima del salón es de 250 personas",
		})
	}

	if intake.EventType == "" {
		errs = append(errs, entities.ValidationError{
			Field:   "eventType",
			Message: "Selecciona el tipo de evento",
		})
	}

	if intake.VenueType == "" {
		errs = append(errs, entities.ValidationError{
			Field:   "venueType",
			Message: "Selecciona el espacio del salón",
		})
	}

	// Cross-field capacity rule. Fires on its own even when the guest count
	// is within the overall 250 maximum.
	if intake.VenueType == entities.VenueFirstFloor && intake.GuestCount > firstFloorCapacity {
		errs = append(errs, entities.ValidationError{
			Field:   "venueType",
			Message: "El primer piso tiene capacidad máxima de 150 personas. Considera usar ambos pisos.",
		})
	}

	if intake.EventDate != "" {
		eventDay, err := time.Parse(dateLayout, intake.EventDate)
		switch {
		case err != nil:
			errs = append(errs, entities.ValidationError{
				Field:   "eventDate",
				Message: "La fecha del evento no es válida",
			})
		case eventDay.Before(dateOnly(today)):
			errs = append(errs, entities.ValidationError{
				Field:   "eventDate",
				Message: "La fecha del evento no puede ser en el pasado",
			})
		case eventDay.Before(dateOnly(today).AddDate(0, 0, minAdvanceDays)):
			warns = append(warns, entities.ValidationError{
				Field:   "eventDate",
				Message: "Se recomienda reservar con al menos 7 días de anticipación",
			})
		}
	}

	if intake.ClientName != "" && utf8.RuneCountInString(intake.ClientName) < 2 {
		errs = append(errs, entities.ValidationError{
			Field:   "clientName",
			Message: "El nombre debe tener al menos 2 caracteres",
		})
	}

	return entities.FormValidation{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}

// selectionWarnings reviews the selected add-ons against the guest count and
// returns service-level advisories. None of them block the quote.
func selectionWarnings(intake entities.QuoteIntake) []entities.ValidationError {
	if intake.GuestCount <= 0 {
		return nil
	}

	var warns []entities.ValidationError

	hasTables := selectedQty(intake, entities.ServiceTablesDressed) > 0 ||
		selectedQty(intake, entities.ServiceTablesPlain) > 0 ||
		intake.TableType != ""
	if !hasTables {
		warns = append(warns, entities.ValidationError{
			Field:   "services",
			Message: "Se recomienda agregar mesas y sillas para los invitados",
		})
	}

	if waiters := selectedQty(intake, entities.ServiceWaiters); waiters > 0 {
		if min := entities.MinimumStaff(intake.GuestCount); waiters < min {
			warns = append(warns, entities.ValidationError{
				Field:   "meseros",
				Message: fmt.Sprintf("Para %d invitados se recomienda mínimo %d meseros", intake.GuestCount, min),
			})
		}
	}

	if intake.GuestCount > 100 {
		hasEntertainment := selectedQty(intake, entities.ServiceDJ) > 0 ||
			selectedQty(intake, entities.ServiceKidsInflatable) > 0 ||
			selectedQty(intake, entities.ServiceTrampoline) > 0
		if !hasEntertainment {
			warns = append(warns, entities.ValidationError{
				Field:   "services",
				Message: "Para eventos grandes se recomienda agregar DJ o entretenimiento",
			})
		}
	}

	return warns
}

// validateContactForm applies the contact-page rules.
func validateContactForm(form entities.ContactForm) entities.FormValidation {
	var errs []entities.ValidationError

	if utf8.RuneCountInString(strings.TrimSpace(form.Name)) < 2 {
		errs = append(errs, entities.ValidationError{
			Field:   "name",
			Message: "El nombre es requerido y debe tener al menos 2 caracteres",
		})
	}

	if form.Email == "" {
		errs = append(errs, entities.ValidationError{
			Field:   "email",
			Message: "El email es requerido",
		})
	} else if !emailPattern.MatchString(form.Email) {
		errs = append(errs, entities.ValidationError{
			Field:   "email",
			Message: "Ingresa un email válido",
		})
	}

	if form.Phone == "" {
		errs = append(errs, entities.ValidationError{
			Field:   "phone",
			Message: "El teléfono es requerido",
		})
	} else if digits := nonDigits.ReplaceAllString(form.Phone, ""); len(digits) != 10 {
		errs = append(errs, entities.ValidationError{
			Field:   "phone",
			Message: "Ingresa un teléfono válido de 10 dígitos",
		})
	}

	if form.EventType == "" {
		errs = append(errs, entities.ValidationError{
			Field:   "eventType",
			Message: "Selecciona el tipo de evento",
		})
	}

	if form.GuestCount != 0 && (form.GuestCount < 0 || form.GuestCount > maxCapacity) {
		errs = append(errs, entities.ValidationError{
			Field:   "guestCount",
			Message: "El número de invitados debe estar entre 1 y 250",
		})
	}

	if utf8.RuneCountInString(strings.TrimSpace(form.Message)) < 10 {
		errs = append(errs, entities.ValidationError{
			Field:   "message",
			Message: "El mensaje debe tener al menos 10 caracteres",
		})
	}

	return entities.FormValidation{IsValid: len(errs) == 0, Errors: errs}
}

func selectedQty(intake entities.QuoteIntake, serviceID string) int {
	return intake.SelectedServices[serviceID]
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
