package model

import (
	"fmt"
	"strconv"
	"strings"
)

// DayCode is a symbolic label for a shift's weekday. Most weekdays map
// directly to their index ("0".."6"). The one weekday that hosts two
// independent shift waves splits into a morning and an evening code, and
// volunteers must opt into each wave explicitly.
type DayCode string

const (
	DaySunday    DayCode = "0"
	DayMonday    DayCode = "1"
	DayTuesday   DayCode = "2"
	DayWednesday DayCode = "3"
	DayThursday  DayCode = "4"
	DayFriday    DayCode = "5"
	DaySaturday  DayCode = "6"

	// Split-wave codes for the default split weekday (index 2)
	DayTuesdayMorning DayCode = "2_morning"
	DayTuesdayEvening DayCode = "2_evening"
)

const (
	morningSuffix = "_morning"
	eveningSuffix = "_evening"
)

// DayCodeFor returns the plain day-code for a weekday index (0 = Sunday)
func DayCodeFor(weekday int) DayCode {
	return DayCode(strconv.Itoa(weekday))
}

// SplitDayCode returns the morning or evening code for a split weekday
func SplitDayCode(weekday int, evening bool) DayCode {
	if evening {
		return DayCode(strconv.Itoa(weekday) + eveningSuffix)
	}
	return DayCode(strconv.Itoa(weekday) + morningSuffix)
}

// Weekday returns the weekday index the code refers to
func (c DayCode) Weekday() int {
	base, _, _ := strings.Cut(string(c), "_")
	weekday, err := strconv.Atoi(base)
	if err != nil {
		return -1
	}
	return weekday
}

// IsSplit reports whether the code names a morning or evening wave rather
// than a whole day
func (c DayCode) IsSplit() bool {
	return strings.Contains(string(c), "_")
}

// ParseDayCode parses the stored form of a day-code ("0".."6",
// "<weekday>_morning" or "<weekday>_evening")
func ParseDayCode(s string) (DayCode, error) {
	base, wave, split := strings.Cut(s, "_")

	weekday, err := strconv.Atoi(base)
	if err != nil || weekday < 0 || weekday > 6 {
		return "", fmt.Errorf("invalid day-code %q: weekday must be 0-6", s)
	}

	if split && wave != "morning" && wave != "evening" {
		return "", fmt.Errorf("invalid day-code %q: wave must be morning or evening", s)
	}

	return DayCode(s), nil
}

// ParseDayCodes parses a slice of stored day-code strings
func ParseDayCodes(raw []string) ([]DayCode, error) {
	codes := make([]DayCode, 0, len(raw))
	for _, s := range raw {
		code, err := ParseDayCode(s)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}
