package entities

// ServiceCategory groups catalog services for display and selection rules.
//
// Domain notes:
//   - Exactly two services carry the venue category and they are the only
//     non-optional ones: a valid quote includes exactly one of them.

type ServiceCategory string

const (
	CategoryVenue         ServiceCategory = "venue"
	CategoryDecoration    ServiceCategory = "decoration"
	CategoryEntertainment ServiceCategory = "entertainment"
	CategoryFood          ServiceCategory = "food"
	CategoryStaff         ServiceCategory = "staff"
	CategoryEquipment     ServiceCategory = "equipment"
)

// Well-known catalog ids the business rules key on. The ids are part of the
// domain vocabulary: venue and table choices on the intake resolve to them,
// and the recommendation rules check for their presence.
const (
	ServiceVenueFirstFloor = "salon-primer-piso"
	ServiceVenueBothFloors = "salon-ambos-pisos"
	ServiceTablesDressed   = "mesas-vestidas"
	ServiceTablesPlain     = "mesas-sencillas"
	ServiceDJ              = "dj-sonido"
	ServiceKidsInflatable  = "inflable-ninos"
	ServiceTrampoline      = "trampolin"
	ServicePlainDecor      = "adornos-sencillos"
	ServiceLitDecor        = "adornos-con-luz"
	ServiceSweetsTable     = "mesa-dulces"
	ServiceWaiters         = "meseros"
)

// Service is a priced offering from the salon catalog.
//
// Monetary representation:
//   - Price is the unit price in MXN. Unit labels the pricing unit
//     ("mesa", "persona", "cartón"); an empty Unit means a flat fee.
//
// The catalog is compiled-in reference data: there is no create/update/delete
// lifecycle, updating prices means redeploying the service.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Unit        string          `json:"unit,omitempty"`
	Category    ServiceCategory `json:"category"`
	IsOptional  bool            `json:"is_optional"`
}
