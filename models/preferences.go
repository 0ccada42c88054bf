package models

// Theme values accepted in preferences
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultReminderLeadDays is the lead time used when none has been saved
const DefaultReminderLeadDays = 30

// Preferences holds the operator-wide settings snapshot
type Preferences struct {
	Theme            string `json:"theme"`
	Language         string `json:"language"`
	ReminderLeadDays int    `json:"reminderLeadDays"`
}
