package model

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// Frequency is a volunteer's stated availability frequency
type Frequency string

const (
	FrequencyWeekly       Frequency = "weekly"
	FrequencyTwiceMonthly Frequency = "twice_monthly"
	FrequencyMonthly      Frequency = "monthly"
)

// Capacity returns the derived monthly capacity for this frequency.
// Unknown frequencies map to 0, meaning the volunteer cannot be assigned.
func (f Frequency) Capacity() int {
	switch f {
	case FrequencyWeekly:
		return 4
	case FrequencyTwiceMonthly:
		return 2
	case FrequencyMonthly:
		return 1
	default:
		return 0
	}
}

// Location identifies a service site
type Location string

const (
	LocationSiteA  Location = "siteA"
	LocationSiteB  Location = "siteB"
	LocationEither Location = "either"
)

func (l Location) IsValid() bool {
	return l == LocationSiteA || l == LocationSiteB || l == LocationEither
}

// Compatible reports whether a volunteer preferring l can work a shift at other.
// "either" on either side always matches.
func (l Location) Compatible(other Location) bool {
	return l == LocationEither || other == LocationEither || l == other
}

// AvailabilityStatus is a volunteer's roster status
type AvailabilityStatus string

const (
	StatusActive   AvailabilityStatus = "Active"
	StatusInactive AvailabilityStatus = "Inactive"
)

// InstanceStatus is the lifecycle status of a shift instance
type InstanceStatus string

const (
	InstanceOpen      InstanceStatus = "Open"
	InstanceAssigned  InstanceStatus = "Assigned"
	InstanceCompleted InstanceStatus = "Completed"
)

// AssignmentStatus is the lifecycle status of an assignment
type AssignmentStatus string

const (
	AssignmentAssigned  AssignmentStatus = "assigned"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentCancelled AssignmentStatus = "cancelled"
)

// Volunteer represents a rostered volunteer
type Volunteer struct {
	ID                string
	FirstName         string
	LastName          string
	SkillLevel        int // 1..3, 1 = least experienced
	Frequency         Frequency
	PreferredLocation Location
	PreferredDays     []DayCode
	BlackoutDates     []time.Time
	OnlyDates         []time.Time
	Status            AvailabilityStatus
}

// MonthlyCapacity returns the maximum number of assignments this volunteer
// may hold in a target month
func (v *Volunteer) MonthlyCapacity() int {
	return v.Frequency.Capacity()
}

// IsActive reports whether the volunteer is eligible for assignment at all
func (v *Volunteer) IsActive() bool {
	return v.Status == StatusActive
}

// PrefersDay reports whether the given day-code is in the volunteer's
// preferred set
func (v *Volunteer) PrefersDay(code DayCode) bool {
	return slices.Contains(v.PreferredDays, code)
}

// IsBlackedOut reports whether the volunteer has blacked out the given date
func (v *Volunteer) IsBlackedOut(date time.Time) bool {
	for _, d := range v.BlackoutDates {
		if SameDate(d, date) {
			return true
		}
	}
	return false
}

// AllowsDate reports whether the volunteer's only-dates allow-list permits the
// given date. An empty allow-list permits every date.
func (v *Volunteer) AllowsDate(date time.Time) bool {
	if len(v.OnlyDates) == 0 {
		return true
	}
	for _, d := range v.OnlyDates {
		if SameDate(d, date) {
			return true
		}
	}
	return false
}

// RecurringShiftPattern represents a weekly recurring shift template
type RecurringShiftPattern struct {
	ID                 string
	Title              string
	Weekday            int // 0 = Sunday .. 6 = Saturday
	StartTime          string // "15:04"
	EndTime            string // "15:04"
	Location           Location
	RequiredVolunteers int // target headcount, advisory
	Active             bool
}

// ShiftOccurrenceException suppresses a single dated occurrence of a pattern
type ShiftOccurrenceException struct {
	PatternID string
	Date      time.Time
}

// ShiftInstance represents one concrete, dated shift
type ShiftInstance struct {
	ID        string
	PatternID string // empty for one-off shifts
	Date      time.Time
	StartTime string // "15:04"
	EndTime   string // "15:04"
	Location  Location
	Status    InstanceStatus
}

// StartHour returns the shift's start hour (0-23). Inputs are validated by the
// providers, so a malformed start time falls back to 0.
func (s *ShiftInstance) StartHour() int {
	hh, _, ok := strings.Cut(s.StartTime, ":")
	if !ok {
		return 0
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0
	}
	return hour
}

// OccurrenceKey identifies one occurrence of a pattern. Two instances are the
// same occurrence iff their keys are equal.
type OccurrenceKey struct {
	PatternID string
	Date      string // "2006-01-02"
}

// Key returns the instance's occurrence key
func (s *ShiftInstance) Key() OccurrenceKey {
	return OccurrenceKey{PatternID: s.PatternID, Date: s.Date.Format(DateLayout)}
}

// Assignment pairs a volunteer with a shift instance
type Assignment struct {
	ID              string
	ShiftInstanceID string
	VolunteerID     string
	Status          AssignmentStatus
}

// DateLayout is the canonical date format used across the system
const DateLayout = "2006-01-02"

// SameDate reports whether two timestamps fall on the same calendar day
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Midnight normalizes a timestamp to the start of its day in UTC
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
