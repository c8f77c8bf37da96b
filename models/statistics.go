package models

// CapacityState is the aggregate view of accepted registrations that the
// sign-up page renders (teams in, individual players in, slots taken per
// position). It is derived data: the stored document is a convenience for
// readers, and the ledger always recomputes it from the teams and
// individuals collections before acting on it.
type CapacityState struct {
	TeamCount         int              `json:"totalTimes"`
	IndividualCount   int              `json:"totalJogadoresIndividuais"`
	PositionsOccupied map[Position]int `json:"posicoesOcupadas"`
}

// NewCapacityState returns a zeroed state with every position present in
// the occupancy map, matching the document shape readers expect.
func NewCapacityState() CapacityState {
	occupied := make(map[Position]int, len(AllPositions))
	for _, p := range AllPositions {
		occupied[p] = 0
	}
	return CapacityState{PositionsOccupied: occupied}
}

// Equal reports whether two states agree, treating a missing occupancy
// entry as zero.
func (c CapacityState) Equal(other CapacityState) bool {
	if c.TeamCount != other.TeamCount || c.IndividualCount != other.IndividualCount {
		return false
	}
	for _, p := range AllPositions {
		if c.PositionsOccupied[p] != other.PositionsOccupied[p] {
			return false
		}
	}
	return true
}
