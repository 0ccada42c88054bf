package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/drivewise/fleet-api/config"
	"github.com/drivewise/fleet-api/fleet"
)

// dashboardWindowDays is the due-soon horizon shown on the dashboard cards
const dashboardWindowDays = 30

// Dashboard exported for testing purposes
type Dashboard struct {
	Store *fleet.Store
}

type dashboardStats struct {
	Vehicles         int `json:"vehicles"`
	MotDueSoon       int `json:"motDueSoon"`
	InsuranceDueSoon int `json:"insuranceDueSoon"`
	ServiceDueSoon   int `json:"serviceDueSoon"`
	WindowDays       int `json:"windowDays"`
}

// DashboardHandler returns the fleet size and the count of vehicles with each
// compliance date due inside the dashboard window
func (d Dashboard) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	vehicles := d.Store.All()

	stats := dashboardStats{
		Vehicles:   len(vehicles),
		WindowDays: dashboardWindowDays,
	}
	for _, v := range vehicles {
		if fleet.DaysUntil(v.Mot.Date, now) <= dashboardWindowDays {
			stats.MotDueSoon++
		}
		if fleet.DaysUntil(v.Insurance.End, now) <= dashboardWindowDays {
			stats.InsuranceDueSoon++
		}
		if fleet.DaysUntil(v.NextService.Date, now) <= dashboardWindowDays {
			stats.ServiceDueSoon++
		}
	}

	b, err := json.Marshal(stats)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
