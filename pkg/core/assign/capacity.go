package assign

import (
	"sort"
	"time"

	"github.com/communityshift/scheduler/pkg/core/model"
)

// DroppedAssignment records a candidate assignment rejected by the capacity
// safety net, with enough context to report it. Dropping is expected,
// recoverable behavior, never an error.
type DroppedAssignment struct {
	Assignment model.Assignment
	ShiftDate  time.Time
	Used       int // volunteer's accepted count at the moment of rejection
	Capacity   int
}

// EnforceCapacity is the independent capacity safety net. It takes any
// candidate assignment list, however it was produced, and greedily accepts
// assignments in shift-date order while each volunteer's running count stays
// below their capacity; the rest are dropped.
//
// shiftDates maps shift instance ID to its date and capacities maps volunteer
// ID to monthly capacity. The pass is idempotent: feeding the accepted set
// back in yields the same accepted set.
func EnforceCapacity(
	candidates []model.Assignment,
	shiftDates map[string]time.Time,
	capacities map[string]int,
) (accepted []model.Assignment, dropped []DroppedAssignment) {
	ordered := make([]model.Assignment, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return shiftDates[ordered[i].ShiftInstanceID].Before(shiftDates[ordered[j].ShiftInstanceID])
	})

	used := make(map[string]int)
	accepted = make([]model.Assignment, 0, len(ordered))

	for _, candidate := range ordered {
		capacity := capacities[candidate.VolunteerID]
		if used[candidate.VolunteerID] < capacity {
			used[candidate.VolunteerID]++
			accepted = append(accepted, candidate)
			continue
		}
		dropped = append(dropped, DroppedAssignment{
			Assignment: candidate,
			ShiftDate:  shiftDates[candidate.ShiftInstanceID],
			Used:       used[candidate.VolunteerID],
			Capacity:   capacity,
		})
	}

	return accepted, dropped
}
