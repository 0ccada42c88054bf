package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/drivewise/fleet-api/config"
	"github.com/drivewise/fleet-api/fleet"
	"github.com/drivewise/fleet-api/models"
)

// Vehicle exported for testing purposes
type Vehicle struct {
	Store *fleet.Store
}

// VehiclesHandler returns one page of the vehicle table. Query params: q
// (free-text search), due_within (days), sort, order (asc|desc), page, limit.
func (v Vehicle) VehiclesHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	list := fleet.Search(v.Store.All(), r.URL.Query().Get("q"))

	if raw := r.URL.Query().Get("due_within"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			days = models.DefaultReminderLeadDays
			zap.S().Warnf("due_within not an integer, using default of %v: %v", days, err)
		}
		list = fleet.FilterDueWithin(list, days, now)
	}

	sortKey := r.URL.Query().Get("sort")
	if sortKey == "" {
		sortKey = fleet.SortPlate
	}
	ascending := r.URL.Query().Get("order") != "desc"
	list = fleet.SortBy(list, sortKey, ascending)

	page := fleet.Paginate(list, getPage(r), getLimit(r))

	b, err := json.Marshal(page)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// VehicleByIDHandler returns a vehicle by ID
func (v Vehicle) VehicleByIDHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]

	zap.S().Debugf("vehicle_id: %v", vehicleID)

	dbResp, err := v.Store.Get(vehicleID)
	if err != nil {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateVehicleHandler creates a vehicle from the submitted form fields
func (v Vehicle) CreateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	var input fleet.VehicleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	created, err := v.Store.Create(input)
	if err != nil {
		storeErrorStatus("failed to create vehicle", w, err)
		return
	}

	b, err := json.Marshal(created)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// UpdateVehicleHandler overwrites the submitted fields on a vehicle. Absent
// fields keep their prior values; a submitted nested record replaces the
// whole prior nested record.
func (v Vehicle) UpdateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]

	var input fleet.VehicleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	updated, err := v.Store.Update(vehicleID, input)
	if err != nil {
		storeErrorStatus("failed to update vehicle", w, err)
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

// DeleteVehicleHandler deletes a vehicle by ID. Confirmation is the UI's
// concern; once invoked the delete is unconditional.
func (v Vehicle) DeleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]

	if err := v.Store.Delete(vehicleID); err != nil {
		storeErrorStatus("failed to delete vehicle", w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Vehicle deleted successfully",
	})
}

// ReplaceVehiclesHandler bulk-sets the whole collection
func (v Vehicle) ReplaceVehiclesHandler(w http.ResponseWriter, r *http.Request) {
	var vehicles []models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicles); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if err := v.Store.ReplaceAll(vehicles); err != nil {
		storeErrorStatus("failed to replace vehicles", w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Vehicles replaced successfully",
		"count":   len(vehicles),
	})
}

// AddMaintenanceHandler appends a maintenance entry to a vehicle's history
func (v Vehicle) AddMaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]

	var entry models.MaintenanceEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	updated, err := v.Store.AddMaintenance(vehicleID, entry)
	if err != nil {
		storeErrorStatus("failed to add maintenance entry", w, err)
		return
	}

	b, err := json.Marshal(updated)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// AddCrashHandler appends an incident entry to a vehicle's history
func (v Vehicle) AddCrashHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]

	var entry models.CrashEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	updated, err := v.Store.AddCrash(vehicleID, entry)
	if err != nil {
		storeErrorStatus("failed to add crash entry", w, err)
		return
	}

	b, err := json.Marshal(updated)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// AddDocumentHandler attaches document metadata to a vehicle
func (v Vehicle) AddDocumentHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]

	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	updated, err := v.Store.AddDocument(vehicleID, doc)
	if err != nil {
		storeErrorStatus("failed to add document", w, err)
		return
	}

	b, err := json.Marshal(updated)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}
