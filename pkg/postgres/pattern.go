package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/communityshift/scheduler/pkg/db"
)

// GetShiftPatterns retrieves all recurring shift pattern records
func (d *DB) GetShiftPatterns(ctx context.Context) ([]db.ShiftPattern, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, title, weekday, start_time, end_time, location, required_volunteers, active
		FROM shift_pattern
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift patterns: %w", err)
	}
	defer rows.Close()

	var patterns []db.ShiftPattern
	for rows.Next() {
		var p db.ShiftPattern
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Weekday, &p.StartTime, &p.EndTime,
			&p.Location, &p.RequiredVolunteers, &p.Active,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift pattern: %w", err)
		}
		patterns = append(patterns, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift patterns: %w", err)
	}

	return patterns, nil
}

// GetShiftExceptions retrieves all occurrence exception records
func (d *DB) GetShiftExceptions(ctx context.Context) ([]db.ShiftException, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, pattern_id, date
		FROM shift_exception
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift exceptions: %w", err)
	}
	defer rows.Close()

	var exceptions []db.ShiftException
	for rows.Next() {
		var ex db.ShiftException
		var date time.Time
		if err := rows.Scan(&ex.ID, &ex.PatternID, &date); err != nil {
			return nil, fmt.Errorf("failed to scan shift exception: %w", err)
		}
		ex.Date = date.Format("2006-01-02")
		exceptions = append(exceptions, ex)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift exceptions: %w", err)
	}

	return exceptions, nil
}
