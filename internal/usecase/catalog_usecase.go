package usecase

import (
	"context"
	"errors"
	"strings"

	"salon_campeche/internal/domain/entities"
	"salon_campeche/internal/usecase/interfaces"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidServiceID = errors.New("invalid service id")
)

// PackageOffer is a predefined package optionally rated against the
// visitor's guest count.
type PackageOffer struct {
	entities.EventPackage
	Fit string `json:"fit,omitempty"`
}

// ICatalogUseCase exposes the read-only catalog operations.

type ICatalogUseCase interface {
	ListServices(ctx context.Context) []entities.Service
	GetServiceByID(ctx context.Context, id string) (entities.Service, error)
	ListPackages(ctx context.Context, guestCount int) []PackageOffer
}

type CatalogUseCase struct {
	catalog interfaces.IServiceCatalog
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.IServiceCatalog) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

func (u *CatalogUseCase) ListServices(ctx context.Context) []entities.Service {
	return u.catalog.List()
}

func (u *CatalogUseCase) GetServiceByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	svc, ok := u.catalog.FindByID(id)
	if !ok {
		return entities.Service{}, ErrServiceNotFound
	}
	return svc, nil
}

// ListPackages returns the predefined packages. With guestCount > 0 each
// package carries a fit hint so the UI can steer the visitor.
func (u *CatalogUseCase) ListPackages(ctx context.Context, guestCount int) []PackageOffer {
	pkgs := u.catalog.Packages()
	offers := make([]PackageOffer, 0, len(pkgs))
	for _, p := range pkgs {
		offers = append(offers, PackageOffer{EventPackage: p, Fit: p.FitForGuests(guestCount)})
	}
	return offers
}
