package prefs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/drivewise/fleet-api/models"
	"github.com/drivewise/fleet-api/prefs"
	"github.com/drivewise/fleet-api/storage"
	"github.com/drivewise/fleet-api/storage/mocks"
)

func newStore(t *testing.T, defaultTheme string) *prefs.Store {
	t.Helper()
	snap := &mocks.Snapshot{}
	snap.On("Read", storage.PrefsKey).Return(nil, storage.ErrNoSnapshot)
	snap.On("Write", storage.PrefsKey, mock.Anything).Return(nil)

	s := prefs.NewStore(snap, defaultTheme)
	s.Load()
	return s
}

func strPtr(s string) *string { return &s }

func TestLoadDefaults(t *testing.T) {
	s := newStore(t, "light")

	got := s.Current()
	assert.Equal(t, models.ThemeLight, got.Theme)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, models.DefaultReminderLeadDays, got.ReminderLeadDays)
}

func TestLoadDefaultThemeDark(t *testing.T) {
	s := newStore(t, "dark")
	assert.Equal(t, models.ThemeDark, s.Current().Theme)
}

func TestLoadUnknownDefaultThemeFallsBackToLight(t *testing.T) {
	s := newStore(t, "solarized")
	assert.Equal(t, models.ThemeLight, s.Current().Theme)
}

func TestLoadMalformedSnapshotUsesDefaults(t *testing.T) {
	snap := &mocks.Snapshot{}
	snap.On("Read", storage.PrefsKey).Return([]byte("{bad"), nil)

	s := prefs.NewStore(snap, "light")
	s.Load()

	assert.Equal(t, models.DefaultReminderLeadDays, s.Current().ReminderLeadDays)
}

func TestLoadCoercesBadFieldsIndividually(t *testing.T) {
	snap := &mocks.Snapshot{}
	snap.On("Read", storage.PrefsKey).Return([]byte(`{"theme":"neon","language":"tr","reminderLeadDays":-4}`), nil)

	s := prefs.NewStore(snap, "light")
	s.Load()

	got := s.Current()
	assert.Equal(t, models.ThemeLight, got.Theme, "unknown theme falls back")
	assert.Equal(t, "tr", got.Language, "valid fields survive")
	assert.Equal(t, models.DefaultReminderLeadDays, got.ReminderLeadDays)
}

func TestUpdateAppliesPresentFields(t *testing.T) {
	s := newStore(t, "light")

	got, err := s.Update(prefs.Input{
		Theme:            strPtr(models.ThemeDark),
		Language:         strPtr("tr"),
		ReminderLeadDays: strPtr("45"),
	})
	assert.NoError(t, err)
	assert.Equal(t, models.ThemeDark, got.Theme)
	assert.Equal(t, "tr", got.Language)
	assert.Equal(t, 45, got.ReminderLeadDays)
	assert.Equal(t, got, s.Current())
}

func TestUpdateAbsentFieldsKeepPriorValues(t *testing.T) {
	s := newStore(t, "dark")

	got, err := s.Update(prefs.Input{Language: strPtr("el")})
	assert.NoError(t, err)
	assert.Equal(t, models.ThemeDark, got.Theme)
	assert.Equal(t, "el", got.Language)
	assert.Equal(t, models.DefaultReminderLeadDays, got.ReminderLeadDays)
}

func TestUpdateInvalidValuesKeepPriorValues(t *testing.T) {
	s := newStore(t, "light")

	got, err := s.Update(prefs.Input{
		Theme:            strPtr("neon"),
		Language:         strPtr("   "),
		ReminderLeadDays: strPtr("zero"),
	})
	assert.NoError(t, err)
	assert.Equal(t, models.ThemeLight, got.Theme)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, models.DefaultReminderLeadDays, got.ReminderLeadDays)

	got, err = s.Update(prefs.Input{ReminderLeadDays: strPtr("-3")})
	assert.NoError(t, err)
	assert.Equal(t, models.DefaultReminderLeadDays, got.ReminderLeadDays)
}

func TestUpdatePersistsBeforeSwapping(t *testing.T) {
	snap := &mocks.Snapshot{}
	snap.On("Read", storage.PrefsKey).Return(nil, storage.ErrNoSnapshot)
	snap.On("Write", storage.PrefsKey, mock.Anything).Return(assert.AnError)

	s := prefs.NewStore(snap, "light")
	s.Load()

	_, err := s.Update(prefs.Input{Theme: strPtr(models.ThemeDark)})
	assert.Error(t, err)
	assert.Equal(t, models.ThemeLight, s.Current().Theme, "failed save leaves prior state")
}
