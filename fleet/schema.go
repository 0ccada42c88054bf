package fleet

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/drivewise/fleet-api/models"
)

// placeholder fills optional identifying fields left blank on creation
const placeholder = "—"

const defaultPhotoURL = "https://images.unsplash.com/photo-1494905998402-395d579af36f?q=80&w=1200&auto=format&fit=crop"

// Compliance date offsets applied when a new record omits them
const (
	defaultMotOffsetDays       = 180
	defaultInsuranceOffsetDays = 365
	defaultServiceOffsetDays   = 120
)

// VehicleInput carries the fields of a create or edit form. Nil fields are
// absent; present nested records replace the prior nested record wholesale.
// Year arrives as form text and is parsed to an integer during normalization.
type VehicleInput struct {
	Plate       *string                 `json:"plate"`
	Vin         *string                 `json:"vin"`
	Make        *string                 `json:"make"`
	Model       *string                 `json:"model"`
	Year        *string                 `json:"year"`
	Color       *string                 `json:"color"`
	Owner       *string                 `json:"owner"`
	Photo       *string                 `json:"photo"`
	Odometer    *int                    `json:"odometer"`
	Mot         *models.MotRecord       `json:"mot"`
	Insurance   *models.InsuranceRecord `json:"insurance"`
	NextService *models.ServiceRecord   `json:"nextService"`
}

// normalizeForCreate validates and fills a raw creation input into a well
// formed Vehicle: fresh id, uppercased plate, placeholder text for blank
// optional fields and computed future compliance dates for omitted records.
func normalizeForCreate(in VehicleInput, now time.Time) (models.Vehicle, error) {
	plate := strings.ToUpper(strings.TrimSpace(deref(in.Plate)))
	makeName := strings.TrimSpace(deref(in.Make))
	modelName := strings.TrimSpace(deref(in.Model))
	if plate == "" {
		return models.Vehicle{}, &ValidationError{Field: "plate", Reason: "must not be blank"}
	}
	if makeName == "" {
		return models.Vehicle{}, &ValidationError{Field: "make", Reason: "must not be blank"}
	}
	if modelName == "" {
		return models.Vehicle{}, &ValidationError{Field: "model", Reason: "must not be blank"}
	}

	v := models.Vehicle{
		ID:       "veh_" + uuid.NewString(),
		Plate:    plate,
		Vin:      orPlaceholder(in.Vin),
		Make:     makeName,
		Model:    modelName,
		Year:     parseYear(in.Year, now.Year()),
		Color:    orPlaceholder(in.Color),
		Owner:    orPlaceholder(in.Owner),
		Photo:    defaultPhotoURL,
		Odometer: 0,
		Mot: models.MotRecord{
			Date:   isoDate(now.AddDate(0, 0, defaultMotOffsetDays)),
			Result: "Due",
		},
		Insurance: models.InsuranceRecord{
			Start:   isoDate(now),
			End:     isoDate(now.AddDate(0, 0, defaultInsuranceOffsetDays)),
			Insurer: placeholder,
			Policy:  placeholder,
		},
		NextService: models.ServiceRecord{
			Date: isoDate(now.AddDate(0, 0, defaultServiceOffsetDays)),
			Type: "General",
		},
		Maintenance: []models.MaintenanceEntry{},
		Crashes:     []models.CrashEntry{},
		Docs:        []models.Document{},
	}

	if in.Photo != nil && strings.TrimSpace(*in.Photo) != "" {
		v.Photo = strings.TrimSpace(*in.Photo)
	}
	if in.Odometer != nil {
		if *in.Odometer < 0 {
			return models.Vehicle{}, &ValidationError{Field: "odometer", Reason: "must not be negative"}
		}
		v.Odometer = *in.Odometer
	}
	if err := applyNested(&v, in); err != nil {
		return models.Vehicle{}, err
	}
	return v, nil
}

// normalizeForUpdate overwrites existing with every field present in the
// input. Absent fields retain their prior values and the record id never
// changes. An unparseable year keeps the prior year.
func normalizeForUpdate(existing models.Vehicle, in VehicleInput) (models.Vehicle, error) {
	v := existing

	if in.Plate != nil {
		plate := strings.TrimSpace(*in.Plate)
		if plate == "" {
			return models.Vehicle{}, &ValidationError{Field: "plate", Reason: "must not be blank"}
		}
		v.Plate = plate
	}
	if in.Make != nil {
		name := strings.TrimSpace(*in.Make)
		if name == "" {
			return models.Vehicle{}, &ValidationError{Field: "make", Reason: "must not be blank"}
		}
		v.Make = name
	}
	if in.Model != nil {
		name := strings.TrimSpace(*in.Model)
		if name == "" {
			return models.Vehicle{}, &ValidationError{Field: "model", Reason: "must not be blank"}
		}
		v.Model = name
	}
	if in.Vin != nil {
		v.Vin = *in.Vin
	}
	if in.Color != nil {
		v.Color = *in.Color
	}
	if in.Owner != nil {
		v.Owner = *in.Owner
	}
	if in.Photo != nil {
		v.Photo = *in.Photo
	}
	v.Year = parseYear(in.Year, existing.Year)
	if in.Odometer != nil {
		if *in.Odometer < 0 {
			return models.Vehicle{}, &ValidationError{Field: "odometer", Reason: "must not be negative"}
		}
		v.Odometer = *in.Odometer
	}
	if err := applyNested(&v, in); err != nil {
		return models.Vehicle{}, err
	}
	return v, nil
}

// applyNested replaces whole nested compliance records, never merging into
// them, so a caller that forgets to carry sibling fields forward fails the
// date check instead of silently dropping data.
func applyNested(v *models.Vehicle, in VehicleInput) error {
	if in.Mot != nil {
		if err := validDate("mot.date", in.Mot.Date); err != nil {
			return err
		}
		v.Mot = *in.Mot
	}
	if in.Insurance != nil {
		if err := validDate("insurance.start", in.Insurance.Start); err != nil {
			return err
		}
		if err := validDate("insurance.end", in.Insurance.End); err != nil {
			return err
		}
		v.Insurance = *in.Insurance
	}
	if in.NextService != nil {
		if err := validDate("nextService.date", in.NextService.Date); err != nil {
			return err
		}
		v.NextService = *in.NextService
	}
	return nil
}

func validDate(field, value string) error {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return &ValidationError{Field: field, Reason: "must be a YYYY-MM-DD date"}
	}
	return nil
}

// parseYear returns the input parsed as a 4-digit year, or fallback when the
// input is absent, unparseable or out of range
func parseYear(in *string, fallback int) int {
	if in == nil {
		return fallback
	}
	y, err := strconv.Atoi(strings.TrimSpace(*in))
	if err != nil || y < 1000 || y > 9999 {
		return fallback
	}
	return y
}

func isoDate(t time.Time) string {
	return t.Format(DateLayout)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orPlaceholder(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return placeholder
	}
	return strings.TrimSpace(*s)
}
