package scoring

import (
	"errors"
	"fmt"

	"github.com/Adfay-Inc/Puntus/models"
)

var (
	ErrInvalidPlacement = errors.New("placement must be between 1 and 12")
	ErrNegativeKills    = errors.New("kill count cannot be negative")
)

// PointsBreakdown is the scored value of a single map result.
type PointsBreakdown struct {
	PlacementPoints int `json:"placement_points"`
	KillPoints      int `json:"kill_points"`
	TotalPoints     int `json:"total_points"`
}

// ResolvePoints converts a placement and kill count into points under the
// given point system. A nil placement means the team has not played the map
// yet and scores zero placement points; kills are still worth their rate.
func ResolvePoints(placement *int, kills int, ps models.PointSystem) (PointsBreakdown, error) {
	if kills < 0 {
		return PointsBreakdown{}, fmt.Errorf("%w: got %d", ErrNegativeKills, kills)
	}

	var placementPoints int
	if placement != nil {
		if !models.ValidPlacement(*placement) {
			return PointsBreakdown{}, fmt.Errorf("%w: got %d", ErrInvalidPlacement, *placement)
		}
		placementPoints = pointsForPlacement(*placement, ps.Placement)
	}

	killPoints := kills * ps.KillPoints
	return PointsBreakdown{
		PlacementPoints: placementPoints,
		KillPoints:      killPoints,
		TotalPoints:     placementPoints + killPoints,
	}, nil
}

func pointsForPlacement(placement int, table models.PlacementTable) int {
	switch placement {
	case 1:
		return table.First
	case 2:
		return table.Second
	case 3:
		return table.Third
	case 4:
		return table.Fourth
	case 5:
		return table.Fifth
	case 6:
		return table.Sixth
	case 7:
		return table.Seventh
	case 8:
		return table.Eighth
	case 9:
		return table.Ninth
	case 10:
		return table.Tenth
	case 11:
		return table.Eleventh
	case 12:
		return table.Twelfth
	default:
		return 0
	}
}
