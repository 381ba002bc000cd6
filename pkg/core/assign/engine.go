package assign

import (
	"errors"
	"sort"

	"github.com/communityshift/scheduler/pkg/core/model"
)

var (
	// ErrNoVolunteers is returned when the engine is given an empty roster.
	// Callers must distinguish this from a run that found nothing assignable.
	ErrNoVolunteers = errors.New("no active volunteers to assign")

	// ErrNoOpenShifts is returned when the engine is given no open shifts
	ErrNoOpenShifts = errors.New("no open shifts in the target period")
)

// Pair is a single proposed volunteer-to-shift assignment
type Pair struct {
	ShiftInstanceID string
	VolunteerID     string
}

// Utilization reports how much of a volunteer's monthly capacity a run used
type Utilization struct {
	Used     int
	Capacity int
}

// Outcome is the result of one engine run
type Outcome struct {
	// Assignments is the produced set of volunteer-to-shift pairs
	Assignments []Pair

	// Utilization maps volunteer ID to used/capacity for the run
	Utilization map[string]Utilization

	// Headcounts maps shift instance ID to its final assignee count
	Headcounts map[string]int

	// Understaffed is the number of shifts still below the soft target.
	// Partial coverage is a reportable outcome, not an error.
	Understaffed int

	// Passes is the number of sweeps the algorithm executed
	Passes int
}

// Engine assigns volunteers to shift instances under capacity, location,
// day-code and date constraints. An Engine is stateless between runs; all
// mutable counters live in a per-run state object.
type Engine struct {
	cfg EngineConfig
}

// New creates an engine with the given thresholds
func New(cfg EngineConfig) *Engine {
	return &Engine{cfg: cfg}
}

// runState holds the mutable counters for a single Run invocation
type runState struct {
	used       map[string]int             // volunteer ID -> assignments so far
	headcounts map[string]int             // shift ID -> assignee count
	assigned   map[string]map[string]bool // shift ID -> volunteer IDs on it
}

// Run produces an assignment set for the given roster and open shifts.
//
// Volunteers are considered in ascending skill order (capacity descending as
// the tie-break) so that less experienced volunteers are placed first and
// senior volunteers remain as a buffer for shifts that stay thin. Passes
// repeat until one makes no new assignment or the pass ceiling is hit; within
// a pass, shifts are visited thinnest first, earliest date first.
//
// Callers are responsible for filtering the inputs: only Active volunteers
// and Open shifts belong here. Empty inputs are reported as ErrNoVolunteers
// or ErrNoOpenShifts rather than an empty success, since they usually mean
// the caller queried the wrong period.
func (e *Engine) Run(volunteers []model.Volunteer, shifts []model.ShiftInstance) (*Outcome, error) {
	if len(volunteers) == 0 {
		return nil, ErrNoVolunteers
	}
	if len(shifts) == 0 {
		return nil, ErrNoOpenShifts
	}

	roster := make([]*model.Volunteer, len(volunteers))
	for i := range volunteers {
		roster[i] = &volunteers[i]
	}
	sortRoster(roster)

	ordered := make([]*model.ShiftInstance, len(shifts))
	for i := range shifts {
		ordered[i] = &shifts[i]
	}

	state := &runState{
		used:       make(map[string]int, len(roster)),
		headcounts: make(map[string]int, len(ordered)),
		assigned:   make(map[string]map[string]bool, len(ordered)),
	}

	var pairs []Pair
	passes := 0

	for passes < e.cfg.MaxPasses {
		passes++
		e.sortShifts(ordered, state)

		newAssignments := 0
		for _, shift := range ordered {
			if state.headcounts[shift.ID] >= e.cfg.HardCeiling {
				continue
			}

			for _, volunteer := range roster {
				if state.assigned[shift.ID][volunteer.ID] {
					continue
				}
				if !e.canAssign(volunteer, shift, state) {
					continue
				}

				state.record(shift.ID, volunteer.ID)
				pairs = append(pairs, Pair{ShiftInstanceID: shift.ID, VolunteerID: volunteer.ID})
				newAssignments++

				if state.headcounts[shift.ID] >= e.cfg.SoftTarget {
					break
				}
			}
		}

		if newAssignments == 0 {
			break
		}
	}

	return e.buildOutcome(roster, ordered, state, pairs, passes), nil
}

// canAssign is the hard eligibility predicate: capacity not exhausted,
// location compatible, shift day-code preferred, date not blacked out, and
// inside the only-dates allow-list when one is set.
func (e *Engine) canAssign(volunteer *model.Volunteer, shift *model.ShiftInstance, state *runState) bool {
	if state.used[volunteer.ID] >= volunteer.MonthlyCapacity() {
		return false
	}
	if !volunteer.PreferredLocation.Compatible(shift.Location) {
		return false
	}
	if !volunteer.PrefersDay(ShiftDayCode(shift, e.cfg)) {
		return false
	}
	if volunteer.IsBlackedOut(shift.Date) {
		return false
	}
	return volunteer.AllowsDate(shift.Date)
}

func (s *runState) record(shiftID, volunteerID string) {
	s.used[volunteerID]++
	s.headcounts[shiftID]++
	if s.assigned[shiftID] == nil {
		s.assigned[shiftID] = make(map[string]bool)
	}
	s.assigned[shiftID][volunteerID] = true
}

// sortRoster orders volunteers ascending by skill level, tie-broken by
// descending monthly capacity
func sortRoster(roster []*model.Volunteer) {
	sort.SliceStable(roster, func(i, j int) bool {
		if roster[i].SkillLevel != roster[j].SkillLevel {
			return roster[i].SkillLevel < roster[j].SkillLevel
		}
		return roster[i].MonthlyCapacity() > roster[j].MonthlyCapacity()
	})
}

// sortShifts orders shifts by current assignee count ascending, tie-broken by
// date ascending, so thin and urgent shifts are filled first
func (e *Engine) sortShifts(shifts []*model.ShiftInstance, state *runState) {
	sort.SliceStable(shifts, func(i, j int) bool {
		ci, cj := state.headcounts[shifts[i].ID], state.headcounts[shifts[j].ID]
		if ci != cj {
			return ci < cj
		}
		return shifts[i].Date.Before(shifts[j].Date)
	})
}

func (e *Engine) buildOutcome(
	roster []*model.Volunteer,
	shifts []*model.ShiftInstance,
	state *runState,
	pairs []Pair,
	passes int,
) *Outcome {
	outcome := &Outcome{
		Assignments: pairs,
		Utilization: make(map[string]Utilization, len(roster)),
		Headcounts:  make(map[string]int, len(shifts)),
		Passes:      passes,
	}
	if outcome.Assignments == nil {
		outcome.Assignments = []Pair{}
	}

	for _, volunteer := range roster {
		outcome.Utilization[volunteer.ID] = Utilization{
			Used:     state.used[volunteer.ID],
			Capacity: volunteer.MonthlyCapacity(),
		}
	}

	for _, shift := range shifts {
		count := state.headcounts[shift.ID]
		outcome.Headcounts[shift.ID] = count
		if count < e.cfg.SoftTarget {
			outcome.Understaffed++
		}
	}

	return outcome
}
