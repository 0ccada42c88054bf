package models

// Vehicle holds the structure for one record in the fleet collection snapshot.
// All dates are ISO 8601 calendar dates (YYYY-MM-DD) serialized as text.
type Vehicle struct {
	ID          string             `json:"id"`
	Plate       string             `json:"plate"`
	Vin         string             `json:"vin"`
	Make        string             `json:"make"`
	Model       string             `json:"model"`
	Year        int                `json:"year"`
	Color       string             `json:"color"`
	Owner       string             `json:"owner"`
	Photo       string             `json:"photo"`
	Odometer    int                `json:"odometer"`
	Mot         MotRecord          `json:"mot"`
	Insurance   InsuranceRecord    `json:"insurance"`
	NextService ServiceRecord      `json:"nextService"`
	Maintenance []MaintenanceEntry `json:"maintenance"`
	Crashes     []CrashEntry       `json:"crashes"`
	Docs        []Document         `json:"docs"`
}

// MotRecord holds the periodic inspection date and its result
type MotRecord struct {
	Date   string `json:"date"`
	Result string `json:"result"`
}

// InsuranceRecord holds the insurance policy window for a vehicle
type InsuranceRecord struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Insurer string `json:"insurer"`
	Policy  string `json:"policy"`
}

// ServiceRecord holds the next scheduled service for a vehicle
type ServiceRecord struct {
	Date string `json:"date"`
	Type string `json:"type"`
}

// MaintenanceEntry is one line of the append-only maintenance history.
// Insertion order is display order.
type MaintenanceEntry struct {
	Date  string  `json:"date"`
	Km    int     `json:"km"`
	Type  string  `json:"type"`
	Cost  float64 `json:"cost"`
	Notes string  `json:"notes,omitempty"`
}

// CrashEntry is one line of the append-only incident history
type CrashEntry struct {
	Date     string  `json:"date"`
	Severity string  `json:"severity"`
	Desc     string  `json:"desc"`
	Cost     float64 `json:"cost"`
}

// Crash severity levels
const (
	SeverityMinor    = "minor"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Document is document metadata attached to a vehicle, no binary payload
type Document struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
