package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityshift/scheduler/pkg/core/model"
	"github.com/communityshift/scheduler/pkg/db"
)

func TestParseMonth(t *testing.T) {
	month, err := ParseMonth("2026-03")
	require.NoError(t, err)
	assert.Equal(t, 2026, month.Year())
	assert.Equal(t, time.March, month.Month())

	_, err = ParseMonth("March 2026")
	assert.Error(t, err)
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(date(2026, 2, 1))
	assert.True(t, start.Equal(date(2026, 2, 1)))
	assert.True(t, end.Equal(date(2026, 2, 28)))

	start, end = MonthRange(date(2026, 3, 15))
	assert.True(t, start.Equal(date(2026, 3, 1)))
	assert.True(t, end.Equal(date(2026, 3, 31)))
}

func TestVolunteerFromRecord(t *testing.T) {
	rec := db.Volunteer{
		ID:                "v1",
		FirstName:         "Alice",
		LastName:          "Archer",
		SkillLevel:        2,
		Frequency:         "twice_monthly",
		PreferredLocation: "siteB",
		PreferredDays:     []string{"1", "2_evening"},
		BlackoutDates:     []string{"2026-03-09"},
		OnlyDates:         []string{"2026-03-02", "2026-03-16"},
		Status:            "Active",
	}

	volunteer, err := volunteerFromRecord(rec)
	require.NoError(t, err)

	assert.Equal(t, model.FrequencyTwiceMonthly, volunteer.Frequency)
	assert.Equal(t, model.LocationSiteB, volunteer.PreferredLocation)
	assert.Equal(t, []model.DayCode{model.DayMonday, model.DayTuesdayEvening}, volunteer.PreferredDays)
	assert.True(t, volunteer.IsActive())
	assert.True(t, volunteer.IsBlackedOut(date(2026, 3, 9)))
	assert.True(t, volunteer.AllowsDate(date(2026, 3, 2)))
	assert.False(t, volunteer.AllowsDate(date(2026, 3, 9)))
}

func TestVolunteerFromRecord_BadDayCode(t *testing.T) {
	rec := db.Volunteer{ID: "v1", PreferredDays: []string{"someday"}}

	_, err := volunteerFromRecord(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v1")
}

func TestVolunteerFromRecord_BadDate(t *testing.T) {
	rec := db.Volunteer{ID: "v1", BlackoutDates: []string{"09/03/2026"}}

	_, err := volunteerFromRecord(rec)
	assert.Error(t, err)
}
