package services

import (
	"fmt"
	"time"

	"github.com/communityshift/scheduler/pkg/core/model"
	"github.com/communityshift/scheduler/pkg/db"
)

// ParseMonth parses a "2006-01" target month string
func ParseMonth(s string) (time.Time, error) {
	month, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", s, err)
	}
	return month, nil
}

// MonthRange returns the first and last day of the given month
func MonthRange(month time.Time) (start, end time.Time) {
	start = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return date, nil
}

func parseDates(raw []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		date, err := parseDate(s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, nil
}

// volunteerFromRecord converts a database volunteer record to the domain type
func volunteerFromRecord(rec db.Volunteer) (model.Volunteer, error) {
	days, err := model.ParseDayCodes(rec.PreferredDays)
	if err != nil {
		return model.Volunteer{}, fmt.Errorf("volunteer %s: %w", rec.ID, err)
	}

	blackouts, err := parseDates(rec.BlackoutDates)
	if err != nil {
		return model.Volunteer{}, fmt.Errorf("volunteer %s blackout dates: %w", rec.ID, err)
	}

	only, err := parseDates(rec.OnlyDates)
	if err != nil {
		return model.Volunteer{}, fmt.Errorf("volunteer %s only dates: %w", rec.ID, err)
	}

	return model.Volunteer{
		ID:                rec.ID,
		FirstName:         rec.FirstName,
		LastName:          rec.LastName,
		SkillLevel:        rec.SkillLevel,
		Frequency:         model.Frequency(rec.Frequency),
		PreferredLocation: model.Location(rec.PreferredLocation),
		PreferredDays:     days,
		BlackoutDates:     blackouts,
		OnlyDates:         only,
		Status:            model.AvailabilityStatus(rec.Status),
	}, nil
}

func patternFromRecord(rec db.ShiftPattern) model.RecurringShiftPattern {
	return model.RecurringShiftPattern{
		ID:                 rec.ID,
		Title:              rec.Title,
		Weekday:            rec.Weekday,
		StartTime:          rec.StartTime,
		EndTime:            rec.EndTime,
		Location:           model.Location(rec.Location),
		RequiredVolunteers: rec.RequiredVolunteers,
		Active:             rec.Active,
	}
}

func exceptionFromRecord(rec db.ShiftException) (model.ShiftOccurrenceException, error) {
	date, err := parseDate(rec.Date)
	if err != nil {
		return model.ShiftOccurrenceException{}, fmt.Errorf("exception %s: %w", rec.ID, err)
	}
	return model.ShiftOccurrenceException{PatternID: rec.PatternID, Date: date}, nil
}

func instanceFromRecord(rec db.ShiftInstance) (model.ShiftInstance, error) {
	date, err := parseDate(rec.Date)
	if err != nil {
		return model.ShiftInstance{}, fmt.Errorf("shift instance %s: %w", rec.ID, err)
	}
	return model.ShiftInstance{
		ID:        rec.ID,
		PatternID: rec.PatternID,
		Date:      date,
		StartTime: rec.StartTime,
		EndTime:   rec.EndTime,
		Location:  model.Location(rec.Location),
		Status:    model.InstanceStatus(rec.Status),
	}, nil
}

func instanceRecord(instance model.ShiftInstance) db.ShiftInstance {
	return db.ShiftInstance{
		ID:        instance.ID,
		PatternID: instance.PatternID,
		Date:      instance.Date.Format(model.DateLayout),
		StartTime: instance.StartTime,
		EndTime:   instance.EndTime,
		Location:  string(instance.Location),
		Status:    string(instance.Status),
	}
}
