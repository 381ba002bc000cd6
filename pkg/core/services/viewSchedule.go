package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/communityshift/scheduler/pkg/core/model"
	"github.com/communityshift/scheduler/pkg/db"
)

// ShiftView is one shift instance with its current assignees
type ShiftView struct {
	Instance     model.ShiftInstance
	Assignees    []string // volunteer display names
	Headcount    int
	Understaffed bool
}

// ScheduleView is a month's schedule with per-shift headcounts
type ScheduleView struct {
	Month        time.Time
	Shifts       []ShiftView
	Understaffed int
}

// ViewSchedule builds a display view of the month's shifts with their
// assignees and headcounts against the soft target
func ViewSchedule(
	ctx context.Context,
	database db.Database,
	logger *zap.Logger,
	month time.Time,
	softTarget int,
) (*ScheduleView, error) {
	start, end := MonthRange(month)
	logger.Debug("Building schedule view", zap.String("month", month.Format("2006-01")))

	instanceRecords, err := database.GetShiftInstancesInRange(
		ctx, start.Format(model.DateLayout), end.Format(model.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift instances: %w", err)
	}

	instanceIDs := make([]string, 0, len(instanceRecords))
	for _, rec := range instanceRecords {
		instanceIDs = append(instanceIDs, rec.ID)
	}

	assignments, err := database.GetAssignmentsForInstances(ctx, instanceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	volunteers, err := database.GetVolunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}
	names := make(map[string]string, len(volunteers))
	for _, v := range volunteers {
		names[v.ID] = v.FirstName + " " + v.LastName
	}

	assignees := make(map[string][]string)
	for _, a := range assignments {
		if a.Status == string(model.AssignmentCancelled) {
			continue
		}
		name, ok := names[a.VolunteerID]
		if !ok {
			name = a.VolunteerID
		}
		assignees[a.ShiftInstanceID] = append(assignees[a.ShiftInstanceID], name)
	}

	view := &ScheduleView{Month: month}
	for _, rec := range instanceRecords {
		instance, err := instanceFromRecord(rec)
		if err != nil {
			return nil, err
		}

		shift := ShiftView{
			Instance:  instance,
			Assignees: assignees[instance.ID],
			Headcount: len(assignees[instance.ID]),
		}
		shift.Understaffed = shift.Headcount < softTarget
		if shift.Understaffed {
			view.Understaffed++
		}
		view.Shifts = append(view.Shifts, shift)
	}

	return view, nil
}
