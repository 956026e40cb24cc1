package repository

import (
	"salon_campeche/internal/domain/entities"
	"salon_campeche/internal/usecase/interfaces"
)

// StaticCatalogRepository serves the compiled-in service catalog.
//
// The catalog is versioned with the binary: price or lineup changes ship as a
// redeploy, never as a runtime mutation. Slice order is the canonical catalog
// order that quote line items follow.

type StaticCatalogRepository struct {
	services []entities.Service
	byID     map[string]entities.Service
	packages []entities.EventPackage
}

var _ interfaces.IServiceCatalog = (*StaticCatalogRepository)(nil)

func NewStaticCatalogRepository() *StaticCatalogRepository {
	byID := make(map[string]entities.Service, len(catalogServices))
	for _, svc := range catalogServices {
		byID[svc.ID] = svc
	}
	return &StaticCatalogRepository{
		services: catalogServices,
		byID:     byID,
		packages: popularPackages,
	}
}

func (r *StaticCatalogRepository) List() []entities.Service {
	out := make([]entities.Service, len(r.services))
	copy(out, r.services)
	return out
}

func (r *StaticCatalogRepository) FindByID(id string) (entities.Service, bool) {
	svc, ok := r.byID[id]
	return svc, ok
}

func (r *StaticCatalogRepository) Packages() []entities.EventPackage {
	out := make([]entities.EventPackage, len(r.packages))
	copy(out, r.packages)
	return out
}

var catalogServices = []entities.Service{
	// Renta del espacio
	{
		ID:          entities.ServiceVenueFirstFloor,
		Name:        "Renta Primer Piso",
		Description: "Capacidad para máximo 150 personas",
		Price:       4000,
		Category:    entities.CategoryVenue,
		IsOptional:  false,
	},
	{
		ID:          entities.ServiceVenueBothFloors,
		Name:        "Renta Ambos Pisos",
		Description: "Capacidad para máximo 250 personas",
		Price:       6000,
		Category:    entities.CategoryVenue,
		IsOptional:  false,
	},

	// Mobiliario
	{
		ID:          entities.ServiceTablesDressed,
		Name:        "Mesas Vestidas",
		Description: "Mantel blanco + mantel de color + sillas con funda y moño (10 personas por mesa)",
		Price:       270,
		Unit:        "mesa",
		Category:    entities.CategoryEquipment,
		IsOptional:  true,
	},
	{
		ID:          entities.ServiceTablesPlain,
		Name:        "Mesas Sencillas",
		Description: "Mantel blanco + 10 sillas (rectangular o circular)",
		Price:       200,
		Unit:        "mesa",
		Category:    entities.CategoryEquipment,
		IsOptional:  true,
	},

	// Entretenimiento
	{
		ID:          entities.ServiceDJ,
		Name:        "DJ con Sonido y Luces",
		Description: "5 horas de servicio, horario inicial a elegir",
		Price:       2700,
		Category:    entities.CategoryEntertainment,
		IsOptional:  true,
	},
	{
		ID:          entities.ServiceKidsInflatable,
		Name:        "Inflable para Niños",
		Description: "Con alberca pequeña de pelotas - todo el día",
		Price:       1200,
		Category:    entities.CategoryEntertainment,
		IsOptional:  true,
	},
	{
		ID:          entities.ServiceTrampoline,
		Name:        "Trampolín Grande",
		Description: "Todo el día",
		Price:       1000,
		Category:    entities.CategoryEntertainment,
		IsOptional:  true,
	},

	// Decoración
	{
		ID:          entities.ServicePlainDecor,
		Name:        "Adornos Sencillos",
		Description: "Arco sencillo + 4 torres con globos + tul y luz en barandal",
		Price:       2700,
		Category:    entities.CategoryDecoration,
		IsOptional:  true,
	},
	{
		ID:          entities.ServiceLitDecor,
		Name:        "Adornos con Luz",
		Description: "Arco con luz + 4 torres con globos + tul y luz en barandal",
		Price:       3200,
		Category:    entities.CategoryDecoration,
		IsOptional:  true,
	},
	{
		ID:          entities.ServiceSweetsTable,
		Name:        "Mesa de Dulces",
		Description: "Personalizable según cantidad y personalización solicitada",
		Price:       3500,
		Category:    entities.CategoryFood,
		IsOptional:  true,
	},

	// Personal y servicio
	{
		ID:          entities.ServiceWaiters,
		Name:        "Servicio de Meseros",
		Description: "Mínimo 3 por evento",
		Price:       400,
		Unit:        "mesero",
		Category:    entities.CategoryStaff,
		IsOptional:  true,
	},
	{
		ID:          "vajilla",
		Name:        "Vajilla Completa",
		Description: "Vaso + platos 3 tiempos + cubiertos",
		Price:       25,
		Unit:        "persona",
		Category:    entities.CategoryEquipment,
		IsOptional:  true,
	},

	// Bebidas
	{
		ID:          "cerveza-corona",
		Name:        "Cerveza Corona/Victoria",
		Description: "Cartón de 24 cervezas de media",
		Price:       400,
		Unit:        "cartón",
		Category:    entities.CategoryFood,
		IsOptional:  true,
	},
	{
		ID:          "cerveza-indio",
		Name:        "Cerveza Indio/Tecate",
		Description: "Cartón de 20 cervezas de media",
		Price:       300,
		Unit:        "cartón",
		Category:    entities.CategoryFood,
		IsOptional:  true,
	},
	{
		ID:          "cerveza-xx",
		Name:        "Cerveza XX Lager",
		Description: "Cartón de 20 cervezas de media",
		Price:       320,
		Unit:        "cartón",
		Category:    entities.CategoryFood,
		IsOptional:  true,
	},
}

var popularPackages = []entities.EventPackage{
	{
		ID:          "basico-150",
		Name:        "Paquete Básico",
		Description: "Ideal para eventos hasta 150 personas",
		MaxGuests:   150,
		IncludedServices: []string{
			entities.ServiceVenueFirstFloor,
			entities.ServiceTablesPlain,
			entities.ServiceWaiters,
		},
		BasePrice: 8200,
	},
	{
		ID:          "completo-150",
		Name:        "Paquete Completo",
		Description: "Todo incluido para eventos hasta 150 personas",
		MaxGuests:   150,
		IncludedServices: []string{
			entities.ServiceVenueFirstFloor,
			entities.ServiceTablesDressed,
			entities.ServiceDJ,
			entities.ServicePlainDecor,
			entities.ServiceWaiters,
		},
		BasePrice: 14650,
		Popular:   true,
	},
	{
		ID:          "premium-250",
		Name:        "Paquete Premium",
		Description: "Experiencia completa para eventos hasta 250 personas",
		MaxGuests:   250,
		IncludedServices: []string{
			entities.ServiceVenueBothFloors,
			entities.ServiceTablesDressed,
			entities.ServiceDJ,
			entities.ServiceLitDecor,
			entities.ServiceSweetsTable,
			entities.ServiceTrampoline,
			entities.ServiceWaiters,
		},
		BasePrice: 25950,
	},
}
