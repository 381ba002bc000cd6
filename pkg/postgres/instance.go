package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/communityshift/scheduler/pkg/db"
)

// GetShiftInstancesInRange retrieves shift instances with start <= date <= end
func (d *DB) GetShiftInstancesInRange(ctx context.Context, start, end string) ([]db.ShiftInstance, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, pattern_id, date, start_time, end_time, location, status
		FROM shift_instance
		WHERE date >= $1 AND date <= $2
		ORDER BY date, start_time
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift instances: %w", err)
	}
	defer rows.Close()

	var instances []db.ShiftInstance
	for rows.Next() {
		var s db.ShiftInstance
		var patternID *string
		var date time.Time
		if err := rows.Scan(&s.ID, &patternID, &date, &s.StartTime, &s.EndTime, &s.Location, &s.Status); err != nil {
			return nil, fmt.Errorf("failed to scan shift instance: %w", err)
		}
		if patternID != nil {
			s.PatternID = *patternID
		}
		s.Date = date.Format("2006-01-02")
		instances = append(instances, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift instances: %w", err)
	}

	return instances, nil
}

// InsertShiftInstances inserts shift instance records in a single transaction
func (d *DB) InsertShiftInstances(ctx context.Context, instances []db.ShiftInstance) error {
	if len(instances) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range instances {
		var patternID *string
		if s.PatternID != "" {
			patternID = &s.PatternID
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO shift_instance (id, pattern_id, date, start_time, end_time, location, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, s.ID, patternID, s.Date, s.StartTime, s.EndTime, s.Location, s.Status)
		if err != nil {
			return fmt.Errorf("failed to insert shift instance: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
