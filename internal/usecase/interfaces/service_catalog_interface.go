package interfaces

import "salon_campeche/internal/domain/entities"

//go:generate mockgen -source=service_catalog_interface.go -destination=mocks/service_catalog_mock.go -package=mock_interfaces

// IServiceCatalog abstracts the read-only service catalog.
//
// The quoting flow needs to:
//   - iterate every service in catalog order (line-item ordering depends on it)
//   - resolve a service id coming from the intake form
//
// There are no mutation operations: the catalog is versioned with the binary.

type IServiceCatalog interface {
	List() []entities.Service
	FindByID(id string) (entities.Service, bool)
	Packages() []entities.EventPackage
}
