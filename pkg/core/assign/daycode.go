package assign

import (
	"github.com/communityshift/scheduler/pkg/core/model"
)

// ShiftDayCode computes the day-code a shift instance matches against
// volunteer day preferences. Shifts on the configured split weekday resolve
// to the morning or evening wave depending on their start hour; every other
// weekday uses its plain day-code.
func ShiftDayCode(shift *model.ShiftInstance, cfg EngineConfig) model.DayCode {
	weekday := int(shift.Date.Weekday())
	if weekday != cfg.SplitWeekday {
		return model.DayCodeFor(weekday)
	}
	return model.SplitDayCode(weekday, shift.StartHour() >= cfg.EveningStartHour)
}
