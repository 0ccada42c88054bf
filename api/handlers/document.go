package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/drivewise/fleet-api/config"
	"github.com/drivewise/fleet-api/fleet"
)

// Document exported for testing purposes
type Document struct {
	Store *fleet.Store
}

// documentItem is one attached document with its owning vehicle's identity
type documentItem struct {
	VehicleID string `json:"vehicleId"`
	Plate     string `json:"plate"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Name      string `json:"name"`
	Type      string `json:"type"`
}

// DocumentsHandler returns the document metadata of the whole fleet,
// flattened in collection order
func (d Document) DocumentsHandler(w http.ResponseWriter, r *http.Request) {
	vehicles := d.Store.All()

	items := make([]documentItem, 0)
	for _, v := range vehicles {
		for _, doc := range v.Docs {
			items = append(items, documentItem{
				VehicleID: v.ID,
				Plate:     v.Plate,
				Make:      v.Make,
				Model:     v.Model,
				Name:      doc.Name,
				Type:      doc.Type,
			})
		}
	}

	b, err := json.Marshal(map[string]interface{}{"items": items})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
