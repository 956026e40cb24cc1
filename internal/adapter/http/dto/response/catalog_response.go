package response

import (
	"salon_campeche/internal/domain/entities"
	"salon_campeche/internal/usecase"
)

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit,omitempty"`
	Category    string  `json:"category"`
	IsOptional  bool    `json:"is_optional"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

type PackageResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	MaxGuests        int      `json:"max_guests"`
	IncludedServices []string `json:"included_services"`
	BasePrice        float64  `json:"base_price"`
	Popular          bool     `json:"popular"`
	Fit              string   `json:"fit,omitempty"`
}

type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Unit:        s.Unit,
		Category:    string(s.Category),
		IsOptional:  s.IsOptional,
	}
}

func FromServices(services []entities.Service) ServiceListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return ServiceListResponse{Services: out}
}

func FromPackageOffers(offers []usecase.PackageOffer) PackageListResponse {
	out := make([]PackageResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, PackageResponse{
			ID:               o.ID,
			Name:             o.Name,
			Description:      o.Description,
			MaxGuests:        o.MaxGuests,
			IncludedServices: o.IncludedServices,
			BasePrice:        o.BasePrice,
			Popular:          o.Popular,
			Fit:              o.Fit,
		})
	}
	return PackageListResponse{Packages: out}
}
