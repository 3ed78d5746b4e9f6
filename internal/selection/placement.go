package selection

import "github.com/remwaste/skip-catalog/internal/domain"

// Placement is where the user intends to put the skip.
type Placement string

const (
	PlacementPrivate Placement = "private" // driveway or other private land
	PlacementPublic  Placement = "public"  // on the road
)

// PlacementCheck is the permit-stage rule applied to a handed-off skip.
// Public placement of a skip that is not allowed on the road requires a
// council permit, which this flow surfaces as a warning before booking.
type PlacementCheck struct {
	Placement   Placement
	RoadWarning bool
}

// CheckPlacement evaluates the permit rule for a skip and placement choice.
func CheckPlacement(skip domain.Skip, p Placement) PlacementCheck {
	return PlacementCheck{
		Placement:   p,
		RoadWarning: p == PlacementPublic && !skip.AllowedOnRoad,
	}
}
