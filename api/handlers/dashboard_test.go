package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drivewise/fleet-api/api/handlers"
	"github.com/drivewise/fleet-api/models"
)

func TestDashboard_DashboardHandler(t *testing.T) {
	store := seededStore(t)
	// one vehicle long overdue on everything, one with nothing due for centuries
	err := store.ReplaceAll([]models.Vehicle{
		{
			ID:          "veh_overdue",
			Mot:         models.MotRecord{Date: "2000-01-01"},
			Insurance:   models.InsuranceRecord{End: "2000-01-01"},
			NextService: models.ServiceRecord{Date: "2000-01-01"},
		},
		{
			ID:          "veh_fine",
			Mot:         models.MotRecord{Date: "2999-01-01"},
			Insurance:   models.InsuranceRecord{End: "2999-01-01"},
			NextService: models.ServiceRecord{Date: "2999-01-01"},
		},
	})
	assert.NoError(t, err)

	req, err := http.NewRequest("GET", "/api/v1/dashboard", nil)
	if err != nil {
		t.Fatal(err)
	}

	d := handlers.Dashboard{Store: store}

	rr := httptest.NewRecorder()
	http.HandlerFunc(d.DashboardHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got struct {
		Vehicles         int `json:"vehicles"`
		MotDueSoon       int `json:"motDueSoon"`
		InsuranceDueSoon int `json:"insuranceDueSoon"`
		ServiceDueSoon   int `json:"serviceDueSoon"`
		WindowDays       int `json:"windowDays"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Vehicles)
	assert.Equal(t, 1, got.MotDueSoon)
	assert.Equal(t, 1, got.InsuranceDueSoon)
	assert.Equal(t, 1, got.ServiceDueSoon)
	assert.Equal(t, 30, got.WindowDays)
}

func TestDashboard_DashboardHandlerEmptyFleet(t *testing.T) {
	store := seededStore(t)
	assert.NoError(t, store.ReplaceAll(nil))

	req, err := http.NewRequest("GET", "/api/v1/dashboard", nil)
	if err != nil {
		t.Fatal(err)
	}

	d := handlers.Dashboard{Store: store}

	rr := httptest.NewRecorder()
	http.HandlerFunc(d.DashboardHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"vehicles":0`)
}
