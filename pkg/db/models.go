package db

// Volunteer represents a database volunteer record. Dates are stored as
// "2006-01-02" strings; the services layer converts to domain types.
type Volunteer struct {
	ID                string
	FirstName         string
	LastName          string
	SkillLevel        int
	Frequency         string
	PreferredLocation string
	PreferredDays     []string
	BlackoutDates     []string
	OnlyDates         []string
	Status            string
}

// ShiftPattern represents a database recurring shift pattern record
type ShiftPattern struct {
	ID                 string
	Title              string
	Weekday            int
	StartTime          string
	EndTime            string
	Location           string
	RequiredVolunteers int
	Active             bool
}

// ShiftException represents a suppressed occurrence of a pattern
type ShiftException struct {
	ID        string
	PatternID string
	Date      string
}

// ShiftInstance represents a database shift instance record
type ShiftInstance struct {
	ID        string
	PatternID string // empty for one-off shifts
	Date      string
	StartTime string
	EndTime   string
	Location  string
	Status    string
}

// Assignment represents a database assignment record
type Assignment struct {
	ID              string
	ShiftInstanceID string
	VolunteerID     string
	Status          string
}
