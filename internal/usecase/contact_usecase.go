package usecase

import (
	"context"
	"errors"

	"salon_campeche/internal/domain/entities"
	"salon_campeche/internal/usecase/interfaces"
)

var ErrInvalidContactForm = errors.New("invalid contact form")

// IContactUseCase turns a valid contact form into a WhatsApp handoff. There
// is no server-side receipt: an invalid form returns its error list, a valid
// one returns the prefilled deep link the visitor opens themselves.

type IContactUseCase interface {
	PrepareContact(ctx context.Context, form entities.ContactForm) (entities.ShareLink, []entities.ValidationError, error)
}

type ContactUseCase struct {
	gateway interfaces.IMessageGateway
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(gateway interfaces.IMessageGateway) *ContactUseCase {
	return &ContactUseCase{gateway: gateway}
}

func (u *ContactUseCase) PrepareContact(ctx context.Context, form entities.ContactForm) (entities.ShareLink, []entities.ValidationError, error) {
	validation := validateContactForm(form)
	if !validation.IsValid {
		return entities.ShareLink{}, validation.Errors, ErrInvalidContactForm
	}
	return u.gateway.ContactShareLink(form), nil, nil
}
