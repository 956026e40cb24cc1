package usecase

import (
	"time"

	"salon_campeche/internal/domain/entities"
)

// recommendations produces the upsell/guidance messages for the current
// intake. Order matters: messages are appended in the order the rules are
// checked so the UI renders them stably. Without a guest count there is
// nothing to advise on and the list is empty.
func recommendations(intake entities.QuoteIntake) []string {
	if intake.GuestCount <= 0 {
		return nil
	}

	var recs []string

	if intake.EventType == "Boda" || intake.EventType == "XV Años" {
		if selectedQty(intake, entities.ServiceDJ) == 0 {
			recs = append(recs, "Para bodas y XV años es esencial contar con DJ profesional")
		}
		if selectedQty(intake, entities.ServiceLitDecor) == 0 && selectedQty(intake, entities.ServicePlainDecor) == 0 {
			recs = append(recs, "La decoración con luces realza la elegancia de bodas y XV años")
		}
		if selectedQty(intake, entities.ServiceSweetsTable) == 0 {
			recs = append(recs, "Una mesa de dulces es perfecta para estos eventos especiales")
		}
	}

	if intake.GuestCount > firstFloorCapacity && intake.VenueType == entities.VenueFirstFloor {
		recs = append(recs, "Para mayor comodidad de tus invitados, considera usar ambos pisos")
	}

	if intake.GuestCount > 50 && selectedQty(intake, entities.ServiceDJ) == 0 {
		recs = append(recs, "Con más de 50 invitados, el DJ mantiene el ambiente festivo")
	}

	if eventDay, err := time.Parse(dateLayout, intake.EventDate); intake.EventDate != "" && err == nil {
		switch eventDay.Month() {
		case time.December, time.January, time.February:
			recs = append(recs, "En temporada navideña ofrecemos decoraciones temáticas especiales")
		case time.May, time.June, time.July:
			recs = append(recs, "Temporada alta: te recomendamos reservar con mayor anticipación")
		}
	}

	if intake.GuestCount <= 120 {
		recs = append(recs, "Para tu número de invitados, el paquete básico podría ser más económico")
	}

	return recs
}
