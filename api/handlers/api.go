package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/drivewise/fleet-api/config"
	"github.com/drivewise/fleet-api/fleet"
	"github.com/drivewise/fleet-api/models"
)

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

// getPage returns the 1-indexed page query param. Out-of-range values are
// clamped later by fleet.Paginate, so only parse failures matter here.
func getPage(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		zap.S().Warnf("error parsing page number, using default of 1: %v", err)
		return 1
	}
	return page
}

func getLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fleet.DefaultPageSize
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		zap.S().Warnf("limit not set, using default of %v", fleet.DefaultPageSize)
		return fleet.DefaultPageSize
	}
	return limit
}

// storeErrorStatus maps a store failure onto the right http status: bad input
// is unprocessable, a missing id is not found, anything else is a failed
// persistence write
func storeErrorStatus(message string, w http.ResponseWriter, err error) {
	var vErr *fleet.ValidationError
	var nfErr *fleet.NotFoundError
	switch {
	case errors.As(err, &vErr):
		config.ErrorStatus(message, http.StatusUnprocessableEntity, w, err)
	case errors.As(err, &nfErr):
		config.ErrorStatus(message, http.StatusNotFound, w, err)
	default:
		config.ErrorStatus(message, http.StatusInternalServerError, w, err)
	}
}
