package entities

// EventPackage is a predefined bundle offered next to the custom quote flow.
// BasePrice is the bundled price, not the sum of the included services.
type EventPackage struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	MaxGuests        int      `json:"max_guests"`
	IncludedServices []string `json:"included_services"`
	BasePrice        float64  `json:"base_price"`
	Popular          bool     `json:"popular"`
}

// Package fit hints shown when comparing against a concrete guest count.
const (
	PackageFitIdeal        = "Ideal para tu evento"
	PackageFitPerfect      = "Perfecto para tu número de invitados"
	PackageFitInsufficient = "Capacidad insuficiente"
)

// FitForGuests rates a package against a guest count. Returns "" when no
// guest count is known yet.
func (p EventPackage) FitForGuests(guestCount int) string {
	if guestCount <= 0 {
		return ""
	}
	if guestCount > p.MaxGuests {
		return PackageFitInsufficient
	}
	if float64(guestCount) <= float64(p.MaxGuests)*0.7 {
		return PackageFitIdeal
	}
	return PackageFitPerfect
}
