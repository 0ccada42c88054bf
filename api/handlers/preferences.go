package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/drivewise/fleet-api/config"
	"github.com/drivewise/fleet-api/prefs"
)

// Preferences exported for testing purposes
type Preferences struct {
	Store *prefs.Store
}

// GetPreferencesHandler returns the operator preferences
func (p Preferences) GetPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(p.Store.Current())
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdatePreferencesHandler applies a settings mutation and returns the saved
// preferences. Invalid values keep the prior ones rather than failing.
func (p Preferences) UpdatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var input prefs.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	updated, err := p.Store.Update(input)
	if err != nil {
		config.ErrorStatus("failed to save preferences", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(updated)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
