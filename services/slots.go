package services

import "github.com/passa-a-bola/platform/models"

// SlotAllocator computes per-position capacity for individual sign-ups in
// formation mode. The total pool is the formation quota multiplied by the
// team limit; occupancy comes from the recomputed CapacityState, never
// from a trusted counter.
type SlotAllocator struct {
	TeamLimit int
}

// RemainingSlots returns how many individual slots are left for position,
// clamped at zero.
func (a SlotAllocator) RemainingSlots(position models.Position, occupied map[models.Position]int) int {
	remaining := models.FormationQuota[position]*a.TeamLimit - occupied[position]
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (a SlotAllocator) Available(position models.Position, occupied map[models.Position]int) bool {
	return a.RemainingSlots(position, occupied) > 0
}

// Report returns remaining slots for every position in enumeration order.
func (a SlotAllocator) Report(occupied map[models.Position]int) map[models.Position]int {
	report := make(map[models.Position]int, len(models.AllPositions))
	for _, position := range models.AllPositions {
		report[position] = a.RemainingSlots(position, occupied)
	}
	return report
}
