package usecase

import (
	"context"
	"errors"
	"testing"

	"salon_campeche/internal/domain/entities"
	mock_interfaces "salon_campeche/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testPackages() []entities.EventPackage {
	return []entities.EventPackage{
		{ID: "basico-150", Name: "Paquete Básico", MaxGuests: 150, BasePrice: 8200},
		{ID: "completo-150", Name: "Paquete Completo", MaxGuests: 150, BasePrice: 14650, Popular: true},
		{ID: "premium-250", Name: "Paquete Premium", MaxGuests: 250, BasePrice: 25950},
	}
}

func TestCatalogUseCase_ListServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockIServiceCatalog(ctrl)
	uc := NewCatalogUseCase(catalog)

	catalog.EXPECT().List().Return(testServices())

	services := uc.ListServices(context.Background())
	if len(services) != len(testServices()) {
		t.Fatalf("expected %d services, got %d", len(testServices()), len(services))
	}
}

func TestCatalogUseCase_GetServiceByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.GetServiceByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIServiceCatalog(ctrl)
		uc := NewCatalogUseCase(catalog)

		catalog.EXPECT().FindByID("alberca").Return(entities.Service{}, false)

		_, err := uc.GetServiceByID(context.Background(), "alberca")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIServiceCatalog(ctrl)
		uc := NewCatalogUseCase(catalog)

		want := findTestService(t, entities.ServiceDJ)
		catalog.EXPECT().FindByID(entities.ServiceDJ).Return(want, true)

		svc, err := uc.GetServiceByID(context.Background(), " dj-sonido ")
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if svc.ID != want.ID || svc.Price != want.Price {
			t.Fatalf("unexpected service %+v", svc)
		}
	})
}

func TestCatalogUseCase_ListPackages(t *testing.T) {
	t.Run("without guest count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIServiceCatalog(ctrl)
		uc := NewCatalogUseCase(catalog)

		catalog.EXPECT().Packages().Return(testPackages())

		offers := uc.ListPackages(context.Background(), 0)
		if len(offers) != 3 {
			t.Fatalf("expected 3 offers, got %d", len(offers))
		}
		for _, offer := range offers {
			if offer.Fit != "" {
				t.Fatalf("expected no fit hint, got %q for %s", offer.Fit, offer.ID)
			}
		}
	})

	t.Run("with guest count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIServiceCatalog(ctrl)
		uc := NewCatalogUseCase(catalog)

		catalog.EXPECT().Packages().Return(testPackages())

		offers := uc.ListPackages(context.Background(), 180)
		if len(offers) != 3 {
			t.Fatalf("expected 3 offers, got %d", len(offers))
		}
		// 180 guests exceed both 150-cap packages and land at 72% of the 250 cap.
		if offers[0].Fit != entities.PackageFitInsufficient || offers[1].Fit != entities.PackageFitInsufficient {
			t.Fatalf("unexpected fits %q %q", offers[0].Fit, offers[1].Fit)
		}
		if offers[2].Fit != entities.PackageFitPerfect {
			t.Fatalf("unexpected premium fit %q", offers[2].Fit)
		}
	})
}
