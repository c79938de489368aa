package scoring

// ChangeDirection indicates which way a team moved between two snapshots.
type ChangeDirection string

const (
	DirectionUp   ChangeDirection = "up"
	DirectionDown ChangeDirection = "down"
)

// PositionChange describes one team's rank movement between two leaderboard
// snapshots. Delta is previous minus current position, so a positive delta
// means the team climbed.
type PositionChange struct {
	Delta     int             `json:"delta"`
	Direction ChangeDirection `json:"direction"`
	Positions int             `json:"positions"`
}

// DetectPositionChanges compares two successive leaderboard snapshots and
// reports rank movement keyed by team id. Teams whose position is unchanged,
// and teams absent from the previous snapshot, produce no entry. The
// detector is stateless; any display expiry is the caller's concern.
func DetectPositionChanges(previous, current []RankedTeam) map[int]PositionChange {
	previousPositions := make(map[int]int, len(previous))
	for _, entry := range previous {
		previousPositions[entry.Team.ID] = entry.Position
	}

	changes := make(map[int]PositionChange)
	for _, entry := range current {
		oldPosition, ok := previousPositions[entry.Team.ID]
		if !ok || oldPosition == entry.Position {
			continue
		}
		delta := oldPosition - entry.Position
		direction := DirectionDown
		if delta > 0 {
			direction = DirectionUp
		}
		positions := delta
		if positions < 0 {
			positions = -positions
		}
		changes[entry.Team.ID] = PositionChange{
			Delta:     delta,
			Direction: direction,
			Positions: positions,
		}
	}
	return changes
}
