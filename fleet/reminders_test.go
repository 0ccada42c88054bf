package fleet_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drivewise/fleet-api/fleet"
	"github.com/drivewise/fleet-api/models"
)

func TestProjectRemindersThreePerVehicle(t *testing.T) {
	vehicles := fleet.SeedVehicles()

	got := fleet.ProjectReminders(vehicles)
	assert.Len(t, got, len(vehicles)*3)

	perVehicle := map[string]int{}
	for _, r := range got {
		perVehicle[r.VehicleID]++
	}
	for _, v := range vehicles {
		assert.Equal(t, 3, perVehicle[v.ID])
	}
}

func TestProjectRemindersSortedAscendingByDueDate(t *testing.T) {
	got := fleet.ProjectReminders(fleet.SeedVehicles())

	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool {
		return got[i].DueDate < got[j].DueDate
	}))
	// the earliest compliance date in the seed fleet is veh_3's MOT
	assert.Equal(t, "veh_3", got[0].VehicleID)
	assert.Equal(t, models.ReminderInspection, got[0].Kind)
	assert.Equal(t, "2025-10-29", got[0].DueDate)
}

func TestProjectRemindersEmptyFleet(t *testing.T) {
	got := fleet.ProjectReminders(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProjectRemindersFollowRecordEdits(t *testing.T) {
	s, _ := newSeededStore(t)

	before := fleet.ProjectReminders(s.All())
	assert.Equal(t, "2025-10-29", before[0].DueDate)

	// pushing veh_3's MOT far out moves its reminder to the back
	_, err := s.Update("veh_3", fleet.VehicleInput{
		Mot: &models.MotRecord{Date: "2027-01-01", Result: "Pass"},
	})
	assert.NoError(t, err)

	after := fleet.ProjectReminders(s.All())
	assert.NotEqual(t, before[0], after[0])
	last := after[len(after)-1]
	assert.Equal(t, "veh_3", last.VehicleID)
	assert.Equal(t, models.ReminderInspection, last.Kind)
	assert.Equal(t, "2027-01-01", last.DueDate)
}
