package postgres

import (
	"context"
	"fmt"

	"github.com/communityshift/scheduler/pkg/db"
)

// GetVolunteers retrieves all volunteer records
func (d *DB) GetVolunteers(ctx context.Context) ([]db.Volunteer, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, skill_level, frequency,
		       preferred_location, preferred_days, blackout_dates, only_dates, status
		FROM volunteer
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", err)
	}
	defer rows.Close()

	var volunteers []db.Volunteer
	for rows.Next() {
		var v db.Volunteer
		if err := rows.Scan(
			&v.ID, &v.FirstName, &v.LastName, &v.SkillLevel, &v.Frequency,
			&v.PreferredLocation, &v.PreferredDays, &v.BlackoutDates, &v.OnlyDates, &v.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer: %w", err)
		}
		volunteers = append(volunteers, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteers: %w", err)
	}

	return volunteers, nil
}
