package fleet

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/drivewise/fleet-api/models"
)

// DateLayout is the ISO 8601 calendar date form used by every date field
const DateLayout = "2006-01-02"

// Tone is the three-level urgency classification derived from days until due
type Tone string

// Tones, most urgent first
const (
	ToneDanger  Tone = "danger"
	ToneWarning Tone = "warning"
	ToneSuccess Tone = "success"
)

// Sort keys accepted by SortBy
const (
	SortPlate       = "plate"
	SortVehicle     = "vehicle"
	SortMot         = "mot"
	SortInsurance   = "insurance"
	SortNextService = "nextService"
	SortYear        = "year"
)

// DefaultPageSize matches the vehicles table page length
const DefaultPageSize = 8

// DaysUntil returns the number of days from now until the given date, rounded
// up. The result is negative for overdue dates and shrinks as wall-clock time
// advances. A malformed date counts as due today.
func DaysUntil(date string, now time.Time) int {
	due, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0
	}
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// StatusTone classifies days-until-due: 7 or fewer is danger, 8 through 30 is
// warning, 31 and later is success.
func StatusTone(daysUntil int) Tone {
	switch {
	case daysUntil <= 7:
		return ToneDanger
	case daysUntil <= 30:
		return ToneWarning
	default:
		return ToneSuccess
	}
}

// Search keeps vehicles where the query is a case-insensitive substring of
// the plate, VIN, make, model or year, each field checked independently. An
// empty query keeps the whole collection in order.
func Search(vehicles []models.Vehicle, query string) []models.Vehicle {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return vehicles
	}
	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		fields := []string{v.Plate, v.Vin, v.Make, v.Model, strconv.Itoa(v.Year)}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// FilterDueWithin keeps vehicles with any compliance date due in at most the
// given number of days
func FilterDueWithin(vehicles []models.Vehicle, days int, now time.Time) []models.Vehicle {
	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if DaysUntil(v.Mot.Date, now) <= days ||
			DaysUntil(v.Insurance.End, now) <= days ||
			DaysUntil(v.NextService.Date, now) <= days {
			out = append(out, v)
		}
	}
	return out
}

// SortBy returns a copy of the collection sorted by the given key. The sort
// is stable so toggling direction on a table column keeps equal rows in
// relative order. Unknown keys sort by plate.
func SortBy(vehicles []models.Vehicle, key string, ascending bool) []models.Vehicle {
	out := append([]models.Vehicle(nil), vehicles...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := sortKey(out[i], key), sortKey(out[j], key)
		if ascending {
			return a < b
		}
		return a > b
	})
	return out
}

// sortKey flattens a vehicle to a comparable string for the given column.
// ISO dates order chronologically as text.
func sortKey(v models.Vehicle, key string) string {
	switch key {
	case SortVehicle:
		return v.Make + " " + v.Model
	case SortMot:
		return v.Mot.Date
	case SortInsurance:
		return v.Insurance.End
	case SortNextService:
		return v.NextService.Date
	case SortYear:
		return fmt.Sprintf("%04d", v.Year)
	default:
		return v.Plate
	}
}

// PageResult is one slice of the collection for table rendering
type PageResult struct {
	Items      []models.Vehicle `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	Total      int              `json:"total"`
}

// Paginate slices out the requested 1-indexed page. Out-of-range page numbers
// clamp into [1, totalPages]; totalPages is never below 1 so an empty
// collection still yields a valid first page.
func Paginate(vehicles []models.Vehicle, page, pageSize int) PageResult {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := len(vehicles)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}
	return PageResult{
		Items:      append([]models.Vehicle{}, vehicles[start:end]...),
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}
