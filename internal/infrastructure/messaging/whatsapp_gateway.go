package messaging

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"regexp"
	"strings"

	"salon_campeche/internal/domain/entities"
	"salon_campeche/internal/usecase/interfaces"
)

const (
	defaultCountryCode = "52"
	defaultPhone       = "5581067082"
)

var nonDigits = regexp.MustCompile(`\D`)

// WhatsAppGateway composes wa.me deep links with prefilled messages. It never
// performs network I/O: the visitor's browser opens the link, which is the
// only submission channel the business has.
//
// Supported env vars:
//   - WHATSAPP_PHONE (default: the salon's number)
//   - WHATSAPP_COUNTRY_CODE (default: 52)

type WhatsAppGateway struct {
	countryCode string
	phone       string
}

var _ interfaces.IMessageGateway = (*WhatsAppGateway)(nil)

func NewWhatsAppGatewayFromEnv() *WhatsAppGateway {
	g := &WhatsAppGateway{
		countryCode: getenvDefault("WHATSAPP_COUNTRY_CODE", defaultCountryCode),
		phone:       nonDigits.ReplaceAllString(getenvDefault("WHATSAPP_PHONE", defaultPhone), ""),
	}
	log.Printf("[messaging][gateway] WhatsApp gateway initialized phone=+%s%s", g.countryCode, g.phone)
	return g
}

// QuoteShareLink renders the quote summary message the visitor forwards to
// the salon.
func (g *WhatsAppGateway) QuoteShareLink(quote entities.Quote, eventType, clientName string) entities.ShareLink {
	if clientName == "" {
		clientName = "Cliente"
	}

	var b strings.Builder
	b.WriteString("¡Hola! He usado su cotizador y me interesa el siguiente paquete:\n\n")
	b.WriteString("*Información del evento:*\n")
	fmt.Fprintf(&b, "- Tipo: %s\n", eventType)
	fmt.Fprintf(&b, "- Invitados: %d personas\n", quote.GuestCount)
	fmt.Fprintf(&b, "- Fecha: %s\n\n", orDefault(quote.EventDate, "Por definir"))

	b.WriteString("*Resumen de la cotización:*\n")
	for _, item := range quote.Items {
		fmt.Fprintf(&b, "• %s (%d) - $%s\n", item.ServiceName, item.Quantity, formatAmount(item.Total))
	}

	fmt.Fprintf(&b, "\n*Total: $%s*\n", formatAmount(quote.Total))
	fmt.Fprintf(&b, "*Anticipo: $%s*\n", formatAmount(quote.AdvancePayment))

	if quote.Notes != "" {
		fmt.Fprintf(&b, "\nNotas adicionales: %s\n", quote.Notes)
	}
	b.WriteString("\n¿Podrían confirmar disponibilidad y brindarme más información?")

	message := b.String()
	log.Printf("[messaging][gateway] quote share link composed client=%q items=%d total=%.2f", clientName, len(quote.Items), quote.Total)
	return entities.ShareLink{URL: g.link(message), Message: message}
}

// ContactShareLink renders the contact-form message.
func (g *WhatsAppGateway) ContactShareLink(form entities.ContactForm) entities.ShareLink {
	guests := "Por definir"
	if form.GuestCount > 0 {
		guests = fmt.Sprintf("%d", form.GuestCount)
	}

	var b strings.Builder
	b.WriteString("¡Hola! Me interesa cotizar un evento.\n\n")
	b.WriteString("*Información de contacto:*\n")
	fmt.Fprintf(&b, "👤 Nombre: %s\n", form.Name)
	fmt.Fprintf(&b, "📱 Teléfono: %s\n", form.Phone)
	fmt.Fprintf(&b, "📧 Email: %s\n\n", form.Email)
	b.WriteString("*Detalles del evento:*\n")
	fmt.Fprintf(&b, "🎉 Tipo: %s\n", form.EventType)
	fmt.Fprintf(&b, "📅 Fecha: %s\n", orDefault(form.EventDate, "Por definir"))
	fmt.Fprintf(&b, "👥 Invitados: %s\n\n", guests)
	b.WriteString("*Mensaje:*\n")
	b.WriteString(form.Message)
	b.WriteString("\n\n¡Espero su respuesta!")

	message := b.String()
	log.Printf("[messaging][gateway] contact share link composed name=%q", form.Name)
	return entities.ShareLink{URL: g.link(message), Message: message}
}

func (g *WhatsAppGateway) link(message string) string {
	return fmt.Sprintf("https://wa.me/%s%s?text=%s", g.countryCode, g.phone, url.QueryEscape(message))
}

// formatAmount renders an MXN amount with thousands separators; cents only
// appear when the amount is fractional (odd totals halve into .50 advances).
func formatAmount(amount float64) string {
	cents := int64(amount*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}
	if frac == 0 {
		return grouped.String()
	}
	return fmt.Sprintf("%s.%02d", grouped.String(), frac)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
