package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityshift/scheduler/pkg/core/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mondayPattern() model.RecurringShiftPattern {
	return model.RecurringShiftPattern{
		ID:                 "p1",
		Title:              "Monday day shift",
		Weekday:            1, // Monday
		StartTime:          "09:00",
		EndTime:            "17:00",
		Location:           model.LocationSiteA,
		RequiredVolunteers: 3,
		Active:             true,
	}
}

func TestMaterialize_WeeklyPattern(t *testing.T) {
	// 2026-03-01 is a Sunday; Mondays in range are the 2nd, 9th and 16th
	instances, err := Materialize(
		[]model.RecurringShiftPattern{mondayPattern()},
		nil,
		date(2026, 3, 1), date(2026, 3, 20),
	)
	require.NoError(t, err)
	require.Len(t, instances, 3)

	expectedDates := []time.Time{date(2026, 3, 2), date(2026, 3, 9), date(2026, 3, 16)}
	for i, instance := range instances {
		assert.True(t, instance.Date.Equal(expectedDates[i]), "instance %d date", i)
		assert.Equal(t, "p1", instance.PatternID)
		assert.Equal(t, "09:00", instance.StartTime)
		assert.Equal(t, "17:00", instance.EndTime)
		assert.Equal(t, model.LocationSiteA, instance.Location)
		assert.Equal(t, model.InstanceOpen, instance.Status)
		assert.Empty(t, instance.ID, "generated instances carry no ID")
	}
}

func TestMaterialize_ExceptionSuppressesOccurrence(t *testing.T) {
	exceptions := []model.ShiftOccurrenceException{
		{PatternID: "p1", Date: date(2026, 3, 9)},
	}

	instances, err := Materialize(
		[]model.RecurringShiftPattern{mondayPattern()},
		exceptions,
		date(2026, 3, 1), date(2026, 3, 20),
	)
	require.NoError(t, err)
	require.Len(t, instances, 2)

	for _, instance := range instances {
		assert.False(t, instance.Date.Equal(date(2026, 3, 9)), "excepted date must be absent")
	}
}

func TestMaterialize_ExceptionForOtherPatternIsInert(t *testing.T) {
	exceptions := []model.ShiftOccurrenceException{
		{PatternID: "other", Date: date(2026, 3, 9)},
	}

	instances, err := Materialize(
		[]model.RecurringShiftPattern{mondayPattern()},
		exceptions,
		date(2026, 3, 1), date(2026, 3, 20),
	)
	require.NoError(t, err)
	assert.Len(t, instances, 3)
}

func TestMaterialize_InactivePatternProducesNothing(t *testing.T) {
	pattern := mondayPattern()
	pattern.Active = false

	instances, err := Materialize(
		[]model.RecurringShiftPattern{pattern},
		nil,
		date(2026, 3, 1), date(2026, 3, 20),
	)
	require.NoError(t, err)
	assert.Empty(t, instances)
}

func TestMaterialize_InvalidRange(t *testing.T) {
	_, err := Materialize(
		[]model.RecurringShiftPattern{mondayPattern()},
		nil,
		date(2026, 3, 20), date(2026, 3, 1),
	)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestMaterialize_SingleDayRange(t *testing.T) {
	// A closed range of one matching day produces exactly one instance
	instances, err := Materialize(
		[]model.RecurringShiftPattern{mondayPattern()},
		nil,
		date(2026, 3, 2), date(2026, 3, 2),
	)
	require.NoError(t, err)
	assert.Len(t, instances, 1)
}

func TestMaterialize_Idempotent(t *testing.T) {
	patterns := []model.RecurringShiftPattern{mondayPattern()}

	first, err := Materialize(patterns, nil, date(2026, 3, 1), date(2026, 3, 31))
	require.NoError(t, err)
	second, err := Materialize(patterns, nil, date(2026, 3, 1), date(2026, 3, 31))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMaterialize_InvalidWeekday(t *testing.T) {
	pattern := mondayPattern()
	pattern.Weekday = 9

	_, err := Materialize(
		[]model.RecurringShiftPattern{pattern},
		nil,
		date(2026, 3, 1), date(2026, 3, 20),
	)
	assert.Error(t, err)
}

func TestMerge_PersistedSupersedesGenerated(t *testing.T) {
	generated, err := Materialize(
		[]model.RecurringShiftPattern{mondayPattern()},
		nil,
		date(2026, 3, 1), date(2026, 3, 20),
	)
	require.NoError(t, err)

	// The March 9th occurrence was already persisted with a manual edit
	persisted := []model.ShiftInstance{
		{
			ID:        "existing-1",
			PatternID: "p1",
			Date:      date(2026, 3, 9),
			StartTime: "10:00", // hand-edited start
			EndTime:   "17:00",
			Location:  model.LocationSiteA,
			Status:    model.InstanceAssigned,
		},
	}

	merged := Merge(generated, persisted)
	require.Len(t, merged, 3)

	// Exactly one instance per (patternID, date) key
	seen := make(map[model.OccurrenceKey]int)
	for _, instance := range merged {
		seen[instance.Key()]++
	}
	for key, count := range seen {
		assert.Equal(t, 1, count, "duplicate occurrence %v", key)
	}

	// The persisted edit wins over the generated instance
	var march9 model.ShiftInstance
	for _, instance := range merged {
		if instance.Date.Equal(date(2026, 3, 9)) {
			march9 = instance
		}
	}
	assert.Equal(t, "existing-1", march9.ID)
	assert.Equal(t, "10:00", march9.StartTime)
	assert.Equal(t, model.InstanceAssigned, march9.Status)
}

func TestMerge_OneOffInstancePassesThrough(t *testing.T) {
	generated, err := Materialize(
		[]model.RecurringShiftPattern{mondayPattern()},
		nil,
		date(2026, 3, 1), date(2026, 3, 20),
	)
	require.NoError(t, err)

	oneOff := model.ShiftInstance{
		ID:        "oneoff-1",
		Date:      date(2026, 3, 14),
		StartTime: "12:00",
		EndTime:   "16:00",
		Location:  model.LocationSiteB,
		Status:    model.InstanceOpen,
	}

	merged := Merge(generated, []model.ShiftInstance{oneOff})
	assert.Len(t, merged, 4)

	found := false
	for _, instance := range merged {
		if instance.ID == "oneoff-1" {
			found = true
		}
	}
	assert.True(t, found, "one-off persisted instance must pass through")
}

func TestNewlyGenerated(t *testing.T) {
	generated, err := Materialize(
		[]model.RecurringShiftPattern{mondayPattern()},
		nil,
		date(2026, 3, 1), date(2026, 3, 20),
	)
	require.NoError(t, err)

	persisted := []model.ShiftInstance{
		{ID: "existing-1", PatternID: "p1", Date: date(2026, 3, 2), Status: model.InstanceOpen},
	}

	fresh := NewlyGenerated(Merge(generated, persisted))
	assert.Len(t, fresh, 2, "only unpersisted instances need storing")
	for _, instance := range fresh {
		assert.Empty(t, instance.ID)
	}
}
