package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/communityshift/scheduler/pkg/core/model"
)

// ErrInvalidRange is returned when a materialization range ends before it starts
var ErrInvalidRange = errors.New("materialization range ends before it starts")

// rruleWeekdays maps weekday indices (0 = Sunday) onto rrule weekday constants
var rruleWeekdays = [7]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// Materialize expands recurring weekly patterns into concrete shift instances
// for every matching date in the closed range [start, end]. Occurrences with a
// matching exception are suppressed. Inactive patterns produce nothing.
//
// The result is deterministic: instances are ordered by date, then pattern ID.
// Generated instances carry no ID; the persistence layer mints IDs when it
// first stores them.
func Materialize(
	patterns []model.RecurringShiftPattern,
	exceptions []model.ShiftOccurrenceException,
	start, end time.Time,
) ([]model.ShiftInstance, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: start=%s end=%s",
			ErrInvalidRange, start.Format(model.DateLayout), end.Format(model.DateLayout))
	}

	// Build exception lookup keyed by (patternID, date)
	excepted := make(map[model.OccurrenceKey]bool, len(exceptions))
	for _, ex := range exceptions {
		excepted[model.OccurrenceKey{
			PatternID: ex.PatternID,
			Date:      ex.Date.Format(model.DateLayout),
		}] = true
	}

	var instances []model.ShiftInstance

	for _, pattern := range patterns {
		if !pattern.Active {
			continue
		}
		if pattern.Weekday < 0 || pattern.Weekday > 6 {
			return nil, fmt.Errorf("pattern %s has invalid weekday %d", pattern.ID, pattern.Weekday)
		}

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rruleWeekdays[pattern.Weekday]},
			Dtstart:   model.Midnight(start),
			Until:     model.Midnight(end),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build recurrence rule for pattern %s: %w", pattern.ID, err)
		}

		for _, date := range rule.All() {
			key := model.OccurrenceKey{PatternID: pattern.ID, Date: date.Format(model.DateLayout)}
			if excepted[key] {
				continue
			}

			instances = append(instances, model.ShiftInstance{
				PatternID: pattern.ID,
				Date:      date,
				StartTime: pattern.StartTime,
				EndTime:   pattern.EndTime,
				Location:  pattern.Location,
				Status:    model.InstanceOpen,
			})
		}
	}

	sortInstances(instances)
	return instances, nil
}

// Merge reconciles freshly generated instances with already-persisted ones for
// the same period. A persisted instance with the same (patternID, date) key
// supersedes the generated one, since persisted edits and assignments are
// authoritative. Persisted instances with no generated counterpart (one-off
// shifts, instances from deactivated patterns) pass through unchanged.
func Merge(generated, persisted []model.ShiftInstance) []model.ShiftInstance {
	persistedKeys := make(map[model.OccurrenceKey]bool, len(persisted))
	for _, instance := range persisted {
		if instance.PatternID == "" {
			continue // one-off shifts never collide with generated occurrences
		}
		persistedKeys[instance.Key()] = true
	}

	merged := make([]model.ShiftInstance, 0, len(generated)+len(persisted))
	merged = append(merged, persisted...)

	for _, instance := range generated {
		if persistedKeys[instance.Key()] {
			continue
		}
		merged = append(merged, instance)
	}

	sortInstances(merged)
	return merged
}

// NewlyGenerated returns the subset of a merged instance set that did not come
// from persistence, i.e. the instances that still need to be stored.
func NewlyGenerated(merged []model.ShiftInstance) []model.ShiftInstance {
	var fresh []model.ShiftInstance
	for _, instance := range merged {
		if instance.ID == "" {
			fresh = append(fresh, instance)
		}
	}
	return fresh
}

func sortInstances(instances []model.ShiftInstance) {
	sort.SliceStable(instances, func(i, j int) bool {
		if !instances[i].Date.Equal(instances[j].Date) {
			return instances[i].Date.Before(instances[j].Date)
		}
		return instances[i].PatternID < instances[j].PatternID
	})
}
