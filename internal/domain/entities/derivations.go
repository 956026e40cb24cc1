package entities

// TablesNeeded returns how many tables a guest count requires, at ten seats
// per table. Defined for guestCount >= 0; returns 0 at 0.
func TablesNeeded(guestCount int) int {
	if guestCount <= 0 {
		return 0
	}
	return (guestCount + 9) / 10
}

// MinimumStaff is the stepwise waiter minimum used for advisory comparison.
// It is never auto-applied to a quote.
func MinimumStaff(guestCount int) int {
	switch {
	case guestCount <= 50:
		return 3
	case guestCount <= 100:
		return 4
	case guestCount <= 150:
		return 5
	case guestCount <= 200:
		return 6
	default:
		return 7
	}
}

// RecommendedVenue suggests a venue configuration for a guest count. Advisory
// only; it never overrides the visitor's explicit choice.
func RecommendedVenue(guestCount int) VenueType {
	if guestCount <= 150 {
		return VenueFirstFloor
	}
	return VenueBothFloors
}
