package prefs

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/drivewise/fleet-api/models"
	"github.com/drivewise/fleet-api/storage"
)

// Store owns the operator preferences snapshot. Load never fails visibly:
// missing or malformed persisted state yields computed defaults, and every
// mutation is saved before returning.
type Store struct {
	mu           sync.Mutex
	snap         storage.Snapshot
	current      models.Preferences
	defaultTheme string
}

// Input carries the fields of a settings mutation. Nil fields are absent.
// ReminderLeadDays arrives as form text; non-positive or unparseable input
// keeps the previous value.
type Input struct {
	Theme            *string `json:"theme"`
	Language         *string `json:"language"`
	ReminderLeadDays *string `json:"reminderLeadDays"`
}

// NewStore returns a preferences store; defaultTheme stands in for the OS
// color-scheme probe the server cannot perform
func NewStore(snap storage.Snapshot, defaultTheme string) *Store {
	if defaultTheme != models.ThemeDark {
		defaultTheme = models.ThemeLight
	}
	return &Store{snap: snap, defaultTheme: defaultTheme}
}

// Load reads the preferences snapshot, recovering to computed defaults when
// it is missing or malformed
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = s.defaults()
	b, err := s.snap.Read(storage.PrefsKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			zap.S().Warnw("failed to read preferences snapshot, using defaults", "error", err)
		}
		return
	}
	var p models.Preferences
	if err := json.Unmarshal(b, &p); err != nil {
		zap.S().Warnw("malformed preferences snapshot, using defaults", "error", err)
		return
	}
	s.current = s.coerce(p)
}

// Current returns the preferences as of the latest completed mutation
func (s *Store) Current() models.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update applies every present field, coercing invalid values to the prior
// ones, and saves the result before returning it
func (s *Store) Update(in Input) (models.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	if in.Theme != nil {
		switch *in.Theme {
		case models.ThemeLight, models.ThemeDark:
			next.Theme = *in.Theme
		}
	}
	if in.Language != nil {
		if tag := strings.TrimSpace(*in.Language); tag != "" {
			next.Language = tag
		}
	}
	if in.ReminderLeadDays != nil {
		if d, err := strconv.Atoi(strings.TrimSpace(*in.ReminderLeadDays)); err == nil && d > 0 {
			next.ReminderLeadDays = d
		}
	}

	b, err := json.Marshal(next)
	if err != nil {
		return models.Preferences{}, err
	}
	if err := s.snap.Write(storage.PrefsKey, b); err != nil {
		return models.Preferences{}, err
	}
	s.current = next
	return next, nil
}

func (s *Store) defaults() models.Preferences {
	return models.Preferences{
		Theme:            s.defaultTheme,
		Language:         "en",
		ReminderLeadDays: models.DefaultReminderLeadDays,
	}
}

// coerce repairs a decoded snapshot field-by-field so one bad value does not
// throw away the rest
func (s *Store) coerce(p models.Preferences) models.Preferences {
	out := s.defaults()
	if p.Theme == models.ThemeLight || p.Theme == models.ThemeDark {
		out.Theme = p.Theme
	}
	if strings.TrimSpace(p.Language) != "" {
		out.Language = p.Language
	}
	if p.ReminderLeadDays > 0 {
		out.ReminderLeadDays = p.ReminderLeadDays
	}
	return out
}
