package models

// Reminder kinds, one per compliance date on a vehicle
const (
	ReminderInspection = "inspection"
	ReminderInsurance  = "insurance"
	ReminderService    = "service"
)

// Reminder is one projected compliance deadline for a vehicle
type Reminder struct {
	VehicleID string `json:"vehicleId"`
	Kind      string `json:"kind"`
	DueDate   string `json:"dueDate"`
}
