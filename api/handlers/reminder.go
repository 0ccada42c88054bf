package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/drivewise/fleet-api/config"
	"github.com/drivewise/fleet-api/fleet"
	"github.com/drivewise/fleet-api/models"
	"github.com/drivewise/fleet-api/prefs"
)

// Reminder exported for testing purposes
type Reminder struct {
	Store *fleet.Store
	Prefs *prefs.Store
}

// reminderItem is one projected reminder enriched with the vehicle identity
// and its urgency classification for rendering
type reminderItem struct {
	VehicleID   string     `json:"vehicleId"`
	Plate       string     `json:"plate"`
	Make        string     `json:"make"`
	Model       string     `json:"model"`
	Kind        string     `json:"kind"`
	DueDate     string     `json:"dueDate"`
	DaysUntil   int        `json:"daysUntil"`
	Tone        fleet.Tone `json:"tone"`
	Approaching bool       `json:"approaching"`
}

type remindersResponse struct {
	Items    []reminderItem `json:"items"`
	LeadDays int            `json:"leadDays"`
}

// RemindersHandler returns every compliance reminder across the fleet, sorted
// ascending by due date. A reminder is approaching once it is due within the
// lead time, taken from preferences unless overridden by ?lead=.
func (rem Reminder) RemindersHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	lead := rem.Prefs.Current().ReminderLeadDays
	if raw := r.URL.Query().Get("lead"); raw != "" {
		if d, err := strconv.Atoi(raw); err == nil && d > 0 {
			lead = d
		} else {
			zap.S().Warnf("lead not a positive integer, using preference of %v", lead)
		}
	}

	vehicles := rem.Store.All()
	byID := make(map[string]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}

	projected := fleet.ProjectReminders(vehicles)
	items := make([]reminderItem, 0, len(projected))
	for _, p := range projected {
		v := byID[p.VehicleID]
		d := fleet.DaysUntil(p.DueDate, now)
		items = append(items, reminderItem{
			VehicleID:   p.VehicleID,
			Plate:       v.Plate,
			Make:        v.Make,
			Model:       v.Model,
			Kind:        p.Kind,
			DueDate:     p.DueDate,
			DaysUntil:   d,
			Tone:        fleet.StatusTone(d),
			Approaching: d <= lead,
		})
	}

	b, err := json.Marshal(remindersResponse{Items: items, LeadDays: lead})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
