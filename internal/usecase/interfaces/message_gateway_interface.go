package interfaces

import "salon_campeche/internal/domain/entities"

//go:generate mockgen -source=message_gateway_interface.go -destination=mocks/message_gateway_mock.go -package=mock_interfaces

// IMessageGateway renders the outbound WhatsApp handoff. Composition is pure
// string building: the service never talks to WhatsApp itself, it hands the
// visitor a deep link that opens the chat with the message prefilled.

type IMessageGateway interface {
	QuoteShareLink(quote entities.Quote, eventType, clientName string) entities.ShareLink
	ContactShareLink(form entities.ContactForm) entities.ShareLink
}
