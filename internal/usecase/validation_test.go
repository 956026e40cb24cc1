package usecase

import (
	"testing"
	"time"

	"salon_campeche/internal/domain/entities"
)

var testToday = time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)

func validIntake() entities.QuoteIntake {
	return entities.QuoteIntake{
		GuestCount: 80,
		EventDate:  "2025-06-14",
		EventType:  "Cumpleaños",
		VenueType:  entities.VenueFirstFloor,
		TableType:  entities.TablesPlain,
		ClientName: "Ana",
	}
}

func hasRule(errs []entities.ValidationError, field, message string) bool {
	for _, e := range errs {
		if e.Field == field && e.Message == message {
			return true
		}
	}
	return false
}

func TestValidateIntake(t *testing.T) {
	t.Run("valid intake", func(t *testing.T) {
		v := validateIntake(validIntake(), testToday)
		if !v.IsValid {
			t.Fatalf("expected valid, got errors %v", v.Errors)
		}
		if len(v.Warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", v.Warnings)
		}
	})

	t.Run("missing guest count", func(t *testing.T) {
		intake := validIntake()
		intake.GuestCount = 0
		v := validateIntake(intake, testToday)
		if v.IsValid {
			t.Fatal("expected invalid")
		}
		if !hasRule(v.Errors, "guestCount", "El número de invitados es requerido y debe ser mayor a 0") {
			t.Fatalf("missing guest count error, got %v", v.Errors)
		}
	})

	t.Run("over capacity", func(t *testing.T) {
		intake := validIntake()
		intake.GuestCount = 251
		intake.VenueType = entities.VenueBothFloors
		v := validateIntake(intake, testToday)
		if !hasRule(v.Errors, "guestCount", "La capacidad máxima del salón es de 250 personas") {
			t.Fatalf("missing capacity error, got %v", v.Errors)
		}
	})

	t.Run("capacity boundary at 250", func(t *testing.T) {
		intake := validIntake()
		intake.GuestCount = 250
		intake.VenueType = entities.VenueBothFloors
		v := validateIntake(intake, testToday)
		if !v.IsValid {
			t.Fatalf("expected valid at 250, got %v", v.Errors)
		}
	})

	t.Run("missing event type", func(t *testing.T) {
		intake := validIntake()
		intake.EventType = ""
		v := validateIntake(intake, testToday)
		if !hasRule(v.Errors, "eventType", "Selecciona el tipo de evento") {
			t.Fatalf("missing event type error, got %v", v.Errors)
		}
	})

	t.Run("missing venue", func(t *testing.T) {
		intake := validIntake()
		intake.VenueType = ""
		v := validateIntake(intake, testToday)
		if !hasRule(v.Errors, "venueType", "Selecciona el espacio del salón") {
			t.Fatalf("missing venue error, got %v", v.Errors)
		}
	})

	t.Run("first floor over its capacity", func(t *testing.T) {
		intake := validIntake()
		intake.GuestCount = 160
		v := validateIntake(intake, testToday)
		if v.IsValid {
			t.Fatal("expected invalid")
		}
		if !hasRule(v.Errors, "venueType", "El primer piso tiene capacidad máxima de 150 personas. Considera usar ambos pisos.") {
			t.Fatalf("missing first floor error, got %v", v.Errors)
		}
		// 160 is within the overall maximum, so only the cross-field rule fires.
		if len(v.Errors) != 1 {
			t.Fatalf("expected exactly 1 error, got %v", v.Errors)
		}
	})

	t.Run("first floor boundary at 150", func(t *testing.T) {
		intake := validIntake()
		intake.GuestCount = 150
		v := validateIntake(intake, testToday)
		if !v.IsValid {
			t.Fatalf("expected valid at 150, got %v", v.Errors)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		intake := validIntake()
		intake.EventDate = "14/06/2025"
		v := validateIntake(intake, testToday)
		if !hasRule(v.Errors, "eventDate", "La fecha del evento no es válida") {
			t.Fatalf("missing date error, got %v", v.Errors)
		}
	})

	t.Run("date in the past", func(t *testing.T) {
		intake := validIntake()
		intake.EventDate = "2025-01-10"
		v := validateIntake(intake, testToday)
		if !hasRule(v.Errors, "eventDate", "La fecha del evento no puede ser en el pasado") {
			t.Fatalf("missing past date error, got %v", v.Errors)
		}
	})

	t.Run("today is not in the past", func(t *testing.T) {
		intake := validIntake()
		intake.EventDate = "2025-01-15"
		v := validateIntake(intake, testToday)
		if hasRule(v.Errors, "eventDate", "La fecha del evento no puede ser en el pasado") {
			t.Fatalf("today flagged as past, got %v", v.Errors)
		}
	})

	t.Run("short notice is a warning not an error", func(t *testing.T) {
		intake := validIntake()
		intake.EventDate = "2025-01-18"
		v := validateIntake(intake, testToday)
		if !v.IsValid {
			t.Fatalf("expected valid, got %v", v.Errors)
		}
		if !hasRule(v.Warnings, "eventDate", "Se recomienda reservar con al menos 7 días de anticipación") {
			t.Fatalf("missing short notice warning, got %v", v.Warnings)
		}
	})

	t.Run("exactly seven days out has no warning", func(t *testing.T) {
		intake := validIntake()
		intake.EventDate = "2025-01-22"
		v := validateIntake(intake, testToday)
		if len(v.Warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", v.Warnings)
		}
	})

	t.Run("empty date is accepted", func(t *testing.T) {
		intake := validIntake()
		intake.EventDate = ""
		v := validateIntake(intake, testToday)
		if !v.IsValid {
			t.Fatalf("expected valid, got %v", v.Errors)
		}
	})

	t.Run("single character name", func(t *testing.T) {
		intake := validIntake()
		intake.ClientName = "A"
		v := validateIntake(intake, testToday)
		if !hasRule(v.Errors, "clientName", "El nombre debe tener al menos 2 caracteres") {
			t.Fatalf("missing name error, got %v", v.Errors)
		}
	})

	t.Run("empty name is accepted", func(t *testing.T) {
		intake := validIntake()
		intake.ClientName = ""
		v := validateIntake(intake, testToday)
		if !v.IsValid {
			t.Fatalf("expected valid, got %v", v.Errors)
		}
	})

	t.Run("rules accumulate", func(t *testing.T) {
		v := validateIntake(entities.QuoteIntake{}, testToday)
		if v.IsValid {
			t.Fatal("expected invalid")
		}
		if len(v.Errors) != 3 {
			t.Fatalf("expected 3 errors (guests, event type, venue), got %v", v.Errors)
		}
	})
}

func TestSelectionWarnings(t *testing.T) {
	t.Run("no guest count yields nothing", func(t *testing.T) {
		warns := selectionWarnings(entities.QuoteIntake{SelectedServices: map[string]int{entities.ServiceWaiters: 1}})
		if warns != nil {
			t.Fatalf("expected nil, got %v", warns)
		}
	})

	t.Run("no tables selected", func(t *testing.T) {
		warns := selectionWarnings(entities.QuoteIntake{GuestCount: 40})
		if !hasRule(warns, "services", "Se recomienda agregar mesas y sillas para los invitados") {
			t.Fatalf("missing tables warning, got %v", warns)
		}
	})

	t.Run("table type counts as tables", func(t *testing.T) {
		warns := selectionWarnings(entities.QuoteIntake{GuestCount: 40, TableType: entities.TablesPlain})
		if hasRule(warns, "services", "Se recomienda agregar mesas y sillas para los invitados") {
			t.Fatalf("unexpected tables warning, got %v", warns)
		}
	})

	t.Run("table service counts as tables", func(t *testing.T) {
		warns := selectionWarnings(entities.QuoteIntake{
			GuestCount:       40,
			SelectedServices: map[string]int{entities.ServiceTablesPlain: 4},
		})
		if hasRule(warns, "services", "Se recomienda agregar mesas y sillas para los invitados") {
			t.Fatalf("unexpected tables warning, got %v", warns)
		}
	})

	t.Run("too few waiters", func(t *testing.T) {
		warns := selectionWarnings(entities.QuoteIntake{
			GuestCount:       80,
			TableType:        entities.TablesPlain,
			SelectedServices: map[string]int{entities.ServiceWaiters: 2},
		})
		if !hasRule(warns, "meseros", "Para 80 invitados se recomienda mínimo 4 meseros") {
			t.Fatalf("missing waiters warning, got %v", warns)
		}
	})

	t.Run("enough waiters", func(t *testing.T) {
		warns := selectionWarnings(entities.QuoteIntake{
			GuestCount:       80,
			TableType:        entities.TablesPlain,
			SelectedServices: map[string]int{entities.ServiceWaiters: 4},
		})
		if len(warns) != 0 {
			t.Fatalf("expected no warnings, got %v", warns)
		}
	})

	t.Run("no waiters selected is not warned", func(t *testing.T) {
		warns := selectionWarnings(entities.QuoteIntake{GuestCount: 80, TableType: entities.TablesPlain})
		for _, w := range warns {
			if w.Field == "meseros" {
				t.Fatalf("unexpected waiters warning: %v", w)
			}
		}
	})

	t.Run("large event without entertainment", func(t *testing.T) {
		warns := selectionWarnings(entities.QuoteIntake{GuestCount: 120, TableType: entities.TablesDressed})
		if !hasRule(warns, "services", "Para eventos grandes se recomienda agregar DJ o entretenimiento") {
			t.Fatalf("missing entertainment warning, got %v", warns)
		}
	})

	t.Run("large event with dj", func(t *testing.T) {
		warns := selectionWarnings(entities.QuoteIntake{
			GuestCount:       120,
			TableType:        entities.TablesDressed,
			SelectedServices: map[string]int{entities.ServiceDJ: 1},
		})
		if len(warns) != 0 {
			t.Fatalf("expected no warnings, got %v", warns)
		}
	})
}

func TestValidateContactForm(t *testing.T) {
	valid := entities.ContactForm{
		Name:       "Ana López",
		Email:      "ana@example.com",
		Phone:      "81-1234-5678",
		EventType:  "Boda",
		GuestCount: 100,
		Message:    "Quiero más información del salón",
	}

	t.Run("valid form", func(t *testing.T) {
		v := validateContactForm(valid)
		if !v.IsValid {
			t.Fatalf("expected valid, got %v", v.Errors)
		}
	})

	t.Run("short name", func(t *testing.T) {
		form := valid
		form.Name = " A "
		v := validateContactForm(form)
		if !hasRule(v.Errors, "name", "El nombre es requerido y debe tener al menos 2 caracteres") {
			t.Fatalf("missing name error, got %v", v.Errors)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		form := valid
		form.Email = ""
		v := validateContactForm(form)
		if !hasRule(v.Errors, "email", "El email es requerido") {
			t.Fatalf("missing email error, got %v", v.Errors)
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		form := valid
		form.Email = "ana@@"
		v := validateContactForm(form)
		if !hasRule(v.Errors, "email", "Ingresa un email válido") {
			t.Fatalf("missing email format error, got %v", v.Errors)
		}
	})

	t.Run("missing phone", func(t *testing.T) {
		form := valid
		form.Phone = ""
		v := validateContactForm(form)
		if !hasRule(v.Errors, "phone", "El teléfono es requerido") {
			t.Fatalf("missing phone error, got %v", v.Errors)
		}
	})

	t.Run("phone with wrong digit count", func(t *testing.T) {
		form := valid
		form.Phone = "12345"
		v := validateContactForm(form)
		if !hasRule(v.Errors, "phone", "Ingresa un teléfono válido de 10 dígitos") {
			t.Fatalf("missing phone format error, got %v", v.Errors)
		}
	})

	t.Run("phone formatting is ignored", func(t *testing.T) {
		form := valid
		form.Phone = "(81) 1234 5678"
		v := validateContactForm(form)
		if !v.IsValid {
			t.Fatalf("expected valid, got %v", v.Errors)
		}
	})

	t.Run("missing event type", func(t *testing.T) {
		form := valid
		form.EventType = ""
		v := validateContactForm(form)
		if !hasRule(v.Errors, "eventType", "Selecciona el tipo de evento") {
			t.Fatalf("missing event type error, got %v", v.Errors)
		}
	})

	t.Run("guest count out of range", func(t *testing.T) {
		form := valid
		form.GuestCount = 300
		v := validateContactForm(form)
		if !hasRule(v.Errors, "guestCount", "El número de invitados debe estar entre 1 y 250") {
			t.Fatalf("missing guest count error, got %v", v.Errors)
		}
	})

	t.Run("guest count is optional", func(t *testing.T) {
		form := valid
		form.GuestCount = 0
		v := validateContactForm(form)
		if !v.IsValid {
			t.Fatalf("expected valid, got %v", v.Errors)
		}
	})

	t.Run("short message", func(t *testing.T) {
		form := valid
		form.Message = "hola    "
		v := validateContactForm(form)
		if !hasRule(v.Errors, "message", "El mensaje debe tener al menos 10 caracteres") {
			t.Fatalf("missing message error, got %v", v.Errors)
		}
	})
}
