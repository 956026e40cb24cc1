package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salon_campeche/internal/domain/entities"
	"salon_campeche/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotReady = errors.New("quote intake incomplete")
	ErrQuoteInvalid  = errors.New("quote intake invalid")
)

// IQuoteUseCase exposes the quote computation pipeline.
//
// The caller owns the event loop: the UI re-invokes Recompute after every
// field mutation and renders whatever comes back. Each result fully
// supersedes the previous one; nothing is persisted between calls.

type IQuoteUseCase interface {
	Recompute(ctx context.Context, intake entities.QuoteIntake) entities.QuoteComputation
	ShareQuote(ctx context.Context, intake entities.QuoteIntake) (entities.ShareLink, error)
}

type QuoteUseCase struct {
	catalog interfaces.IServiceCatalog
	gateway interfaces.IMessageGateway
	now     func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(catalog interfaces.IServiceCatalog, gateway interfaces.IMessageGateway) *QuoteUseCase {
	return &QuoteUseCase{catalog: catalog, gateway: gateway, now: time.Now}
}

// Recompute runs validator, recommender and builder over one intake snapshot.
//
// Readiness gate: a quote is only attempted once guestCount > 0 and a venue
// is chosen. Before that the intake is Incomplete; validator output and
// recommendations are still returned so the UI can guide the visitor.
// A ready intake with blocking errors yields no quote either (Invalid).
func (u *QuoteUseCase) Recompute(ctx context.Context, intake entities.QuoteIntake) entities.QuoteComputation {
	validation := validateIntake(intake, u.now())

	comp := entities.QuoteComputation{
		Ready:           intake.GuestCount > 0 && intake.VenueType != "",
		Errors:          validation.Errors,
		Warnings:        append(validation.Warnings, selectionWarnings(intake)...),
		Recommendations: recommendations(intake),
	}

	if !comp.Ready || !validation.IsValid {
		return comp
	}

	quote := u.buildQuote(intake)
	comp.Quote = &quote
	return comp
}

// ShareQuote recomputes the intake and renders the WhatsApp handoff for the
// resulting quote. There is no other submission channel.
func (u *QuoteUseCase) ShareQuote(ctx context.Context, intake entities.QuoteIntake) (entities.ShareLink, error) {
	comp := u.Recompute(ctx, intake)
	if !comp.Ready {
		return entities.ShareLink{}, ErrQuoteNotReady
	}
	if comp.Quote == nil {
		return entities.ShareLink{}, ErrQuoteInvalid
	}
	return u.gateway.QuoteShareLink(*comp.Quote, intake.EventType, intake.ClientName), nil
}

// buildQuote assembles the line items for an intake that already passed
// validation. Line order is fixed: venue, tables, then add-ons in catalog
// order. A selected id missing from the catalog produces no line and no
// error; stale references degrade to a smaller quote instead of failing it.
func (u *QuoteUseCase) buildQuote(intake entities.QuoteIntake) entities.Quote {
	var items []entities.QuoteItem
	subtotal := 0.0

	if intake.VenueType != "" {
		if venue, ok := u.catalog.FindByID(venueServiceID(intake.VenueType)); ok {
			items = append(items, entities.QuoteItem{
				ServiceID:   venue.ID,
				ServiceName: venue.Name,
				Quantity:    1,
				UnitPrice:   venue.Price,
				Total:       venue.Price,
				Description: venue.Description,
			})
			subtotal += venue.Price
		}
	}

	if intake.TableType != "" && intake.GuestCount > 0 {
		if table, ok := u.catalog.FindByID(tableServiceID(intake.TableType)); ok {
			tables := entities.TablesNeeded(intake.GuestCount)
			total := table.Price * float64(tables)
			items = append(items, entities.QuoteItem{
				ServiceID:   table.ID,
				ServiceName: table.Name,
				Quantity:    tables,
				UnitPrice:   table.Price,
				Total:       total,
				Description: fmt.Sprintf("%s - Calculado para %d personas", table.Description, intake.GuestCount),
			})
			subtotal += total
		}
	}

	for _, svc := range u.catalog.List() {
		quantity := selectedQty(intake, svc.ID)
		if quantity <= 0 {
			continue
		}
		total := svc.Price * float64(quantity)
		description := svc.Description
		if svc.Unit != "" {
			description = fmt.Sprintf("%s (%s)", svc.Description, svc.Unit)
		}
		items = append(items, entities.QuoteItem{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Quantity:    quantity,
			UnitPrice:   svc.Price,
			Total:       total,
			Description: description,
		})
		subtotal += total
	}

	return entities.Quote{
		ID:             uuid.NewString(),
		Items:          items,
		Subtotal:       subtotal,
		Total:          subtotal,
		AdvancePayment: subtotal * 0.5,
		EventDate:      intake.EventDate,
		GuestCount:     intake.GuestCount,
		Notes:          intake.Notes,
		CreatedAt:      u.now().UTC(),
	}
}

func venueServiceID(venue entities.VenueType) string {
	if venue == entities.VenueBothFloors {
		return entities.ServiceVenueBothFloors
	}
	return entities.ServiceVenueFirstFloor
}

func tableServiceID(table entities.TableType) string {
	if table == entities.TablesDressed {
		return entities.ServiceTablesDressed
	}
	return entities.ServiceTablesPlain
}
