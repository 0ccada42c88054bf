package fleet

import (
	"sort"

	"github.com/drivewise/fleet-api/models"
)

// ProjectReminders expands every vehicle into its three compliance reminders
// and returns the flattened sequence sorted ascending by due date across the
// whole fleet. The projection is recomputed on each call, never cached; the
// dataset is small and a cache would only add staleness risk.
func ProjectReminders(vehicles []models.Vehicle) []models.Reminder {
	out := make([]models.Reminder, 0, len(vehicles)*3)
	for _, v := range vehicles {
		out = append(out,
			models.Reminder{VehicleID: v.ID, Kind: models.ReminderInspection, DueDate: v.Mot.Date},
			models.Reminder{VehicleID: v.ID, Kind: models.ReminderInsurance, DueDate: v.Insurance.End},
			models.Reminder{VehicleID: v.ID, Kind: models.ReminderService, DueDate: v.NextService.Date},
		)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate < out[j].DueDate
	})
	return out
}
