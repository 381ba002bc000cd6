package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrequency_Capacity(t *testing.T) {
	tests := []struct {
		name      string
		frequency Frequency
		expected  int
	}{
		{"weekly", FrequencyWeekly, 4},
		{"twice monthly", FrequencyTwiceMonthly, 2},
		{"monthly", FrequencyMonthly, 1},
		{"unknown", Frequency("occasionally"), 0},
		{"empty", Frequency(""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.frequency.Capacity())
		})
	}
}

func TestLocation_Compatible(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Location
		expected bool
	}{
		{"exact match", LocationSiteA, LocationSiteA, true},
		{"mismatch", LocationSiteA, LocationSiteB, false},
		{"volunteer either", LocationEither, LocationSiteB, true},
		{"shift either", LocationSiteA, LocationEither, true},
		{"both either", LocationEither, LocationEither, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Compatible(tt.b))
		})
	}
}

func TestVolunteer_IsBlackedOut(t *testing.T) {
	blackout := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	volunteer := Volunteer{
		ID:            "v1",
		BlackoutDates: []time.Time{blackout},
	}

	assert.True(t, volunteer.IsBlackedOut(blackout))
	// Same day at a different clock time still counts
	assert.True(t, volunteer.IsBlackedOut(blackout.Add(9*time.Hour)))
	assert.False(t, volunteer.IsBlackedOut(blackout.AddDate(0, 0, 1)))
}

func TestVolunteer_AllowsDate(t *testing.T) {
	allowed := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	unrestricted := Volunteer{ID: "v1"}
	assert.True(t, unrestricted.AllowsDate(allowed), "empty allow-list permits every date")

	restricted := Volunteer{ID: "v2", OnlyDates: []time.Time{allowed}}
	assert.True(t, restricted.AllowsDate(allowed))
	assert.False(t, restricted.AllowsDate(allowed.AddDate(0, 0, 7)))
}

func TestShiftInstance_StartHour(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		expected  int
	}{
		{"morning", "09:00", 9},
		{"afternoon", "16:30", 16},
		{"midnight", "00:00", 0},
		{"malformed", "late", 0},
		{"out of range", "25:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shift := ShiftInstance{StartTime: tt.startTime}
			assert.Equal(t, tt.expected, shift.StartHour())
		})
	}
}

func TestShiftInstance_Key(t *testing.T) {
	shift := ShiftInstance{
		ID:        "s1",
		PatternID: "p1",
		Date:      time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, OccurrenceKey{PatternID: "p1", Date: "2026-03-09"}, shift.Key())
}
