package postgres

import (
	"context"
	"fmt"

	"github.com/communityshift/scheduler/pkg/db"
)

// GetAssignmentsForInstances retrieves assignments for the given shift instances
func (d *DB) GetAssignmentsForInstances(ctx context.Context, instanceIDs []string) ([]db.Assignment, error) {
	if len(instanceIDs) == 0 {
		return nil, nil
	}

	rows, err := d.pool.Query(ctx, `
		SELECT id, shift_instance_id, volunteer_id, status
		FROM assignment
		WHERE shift_instance_id = ANY($1)
	`, instanceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		if err := rows.Scan(&a.ID, &a.ShiftInstanceID, &a.VolunteerID, &a.Status); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// InsertAssignments inserts assignment records in a single transaction
func (d *DB) InsertAssignments(ctx context.Context, assignments []db.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO assignment (id, shift_instance_id, volunteer_id, status)
			VALUES ($1, $2, $3, $4)
		`, a.ID, a.ShiftInstanceID, a.VolunteerID, a.Status)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteAssignments deletes assignment records by ID
func (d *DB) DeleteAssignments(ctx context.Context, assignmentIDs []string) error {
	if len(assignmentIDs) == 0 {
		return nil
	}

	_, err := d.pool.Exec(ctx, `
		DELETE FROM assignment WHERE id = ANY($1)
	`, assignmentIDs)
	if err != nil {
		return fmt.Errorf("failed to delete assignments: %w", err)
	}
	return nil
}

// DeleteAssignmentsForInstances deletes all assignments attached to the given
// shift instances. Used to clear a month's stale assignments before applying
// a freshly generated set.
func (d *DB) DeleteAssignmentsForInstances(ctx context.Context, instanceIDs []string) error {
	if len(instanceIDs) == 0 {
		return nil
	}

	_, err := d.pool.Exec(ctx, `
		DELETE FROM assignment WHERE shift_instance_id = ANY($1)
	`, instanceIDs)
	if err != nil {
		return fmt.Errorf("failed to delete assignments for instances: %w", err)
	}
	return nil
}
