package db

import "context"

// VolunteerStore defines volunteer roster database operations
type VolunteerStore interface {
	GetVolunteers(ctx context.Context) ([]Volunteer, error)
}

// PatternStore defines recurring pattern and exception database operations
type PatternStore interface {
	GetShiftPatterns(ctx context.Context) ([]ShiftPattern, error)
	GetShiftExceptions(ctx context.Context) ([]ShiftException, error)
}

// InstanceStore defines shift instance database operations
type InstanceStore interface {
	// GetShiftInstancesInRange returns instances with start <= date <= end
	// (dates as "2006-01-02")
	GetShiftInstancesInRange(ctx context.Context, start, end string) ([]ShiftInstance, error)
	InsertShiftInstances(ctx context.Context, instances []ShiftInstance) error
}

// AssignmentStore defines assignment database operations
type AssignmentStore interface {
	GetAssignmentsForInstances(ctx context.Context, instanceIDs []string) ([]Assignment, error)
	InsertAssignments(ctx context.Context, assignments []Assignment) error
	DeleteAssignments(ctx context.Context, assignmentIDs []string) error
	DeleteAssignmentsForInstances(ctx context.Context, instanceIDs []string) error
}

// Database aggregates all store interfaces implemented by the postgres layer
type Database interface {
	VolunteerStore
	PatternStore
	InstanceStore
	AssignmentStore
}
