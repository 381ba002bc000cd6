package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/communityshift/scheduler/pkg/db"
)

func TestViewSchedule(t *testing.T) {
	alice := activeVolunteerRecord("v1", "weekly")
	alice.FirstName, alice.LastName = "Alice", "Archer"
	bob := activeVolunteerRecord("v2", "weekly")
	bob.FirstName, bob.LastName = "Bob", "Bell"

	database := &mockDatabase{
		volunteers: []db.Volunteer{alice, bob},
		instances: []db.ShiftInstance{
			openInstanceRecord("s1", "2026-03-02"),
			openInstanceRecord("s2", "2026-03-09"),
		},
		assignments: []db.Assignment{
			{ID: "a1", ShiftInstanceID: "s1", VolunteerID: "v1", Status: "assigned"},
			{ID: "a2", ShiftInstanceID: "s1", VolunteerID: "v2", Status: "assigned"},
			{ID: "a3", ShiftInstanceID: "s2", VolunteerID: "v1", Status: "cancelled"},
		},
	}

	view, err := ViewSchedule(
		context.Background(), database, zap.NewNop(), date(2026, 3, 1), 2,
	)
	require.NoError(t, err)
	require.Len(t, view.Shifts, 2)

	first := view.Shifts[0]
	assert.Equal(t, "s1", first.Instance.ID)
	assert.Equal(t, []string{"Alice Archer", "Bob Bell"}, first.Assignees)
	assert.Equal(t, 2, first.Headcount)
	assert.False(t, first.Understaffed)

	// Cancelled assignments don't count toward headcount
	second := view.Shifts[1]
	assert.Empty(t, second.Assignees)
	assert.True(t, second.Understaffed)

	assert.Equal(t, 1, view.Understaffed)
}

func TestViewSchedule_UnknownVolunteerFallsBackToID(t *testing.T) {
	database := &mockDatabase{
		instances: []db.ShiftInstance{openInstanceRecord("s1", "2026-03-02")},
		assignments: []db.Assignment{
			{ID: "a1", ShiftInstanceID: "s1", VolunteerID: "ghost", Status: "assigned"},
		},
	}

	view, err := ViewSchedule(
		context.Background(), database, zap.NewNop(), date(2026, 3, 1), 3,
	)
	require.NoError(t, err)
	require.Len(t, view.Shifts, 1)
	assert.Equal(t, []string{"ghost"}, view.Shifts[0].Assignees)
}
