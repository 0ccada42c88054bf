package fleet

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/drivewise/fleet-api/models"
	"github.com/drivewise/fleet-api/storage"
)

// Store is the single source of truth for the vehicle collection within the
// running process. Every mutation goes through it and is persisted to the
// snapshot collaborator before returning, so the snapshot is always
// consistent with memory. Handlers run concurrently, so the collection is
// guarded by a mutex: mutations apply synchronously under the lock and reads
// always see the latest completed mutation.
type Store struct {
	mu       sync.RWMutex
	snap     storage.Snapshot
	vehicles []models.Vehicle

	// Clock returns the current time; swapped out in tests
	Clock func() time.Time
}

// NewStore returns a Store persisting to the given snapshot collaborator
func NewStore(snap storage.Snapshot) *Store {
	return &Store{snap: snap, Clock: time.Now}
}

// Load reads the collection snapshot. A missing or malformed snapshot falls
// back to the deterministic seed fleet instead of failing: the dashboard must
// always have something to render.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.snap.Read(storage.VehiclesKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			zap.S().Warnw("failed to read vehicle snapshot, using seed fleet", "error", err)
		}
		s.vehicles = SeedVehicles()
		return
	}
	var vs []models.Vehicle
	if err := json.Unmarshal(b, &vs); err != nil {
		zap.S().Warnw("malformed vehicle snapshot, using seed fleet", "error", err)
		s.vehicles = SeedVehicles()
		return
	}
	if vs == nil {
		vs = []models.Vehicle{}
	}
	s.vehicles = vs
}

// All returns a read-only copy of the current collection in order
func (s *Store) All() []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Vehicle(nil), s.vehicles...)
}

// Get returns the vehicle with the given id
func (s *Store) Get(id string) (models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Vehicle{}, &NotFoundError{ID: id}
}

// Create normalizes the input into a fresh vehicle, prepends it to the
// collection (most recently created first) and persists before returning
func (s *Store) Create(in VehicleInput) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := normalizeForCreate(in, s.Clock())
	if err != nil {
		return models.Vehicle{}, err
	}
	next := append([]models.Vehicle{v}, s.vehicles...)
	if err := s.persist(next); err != nil {
		return models.Vehicle{}, err
	}
	s.vehicles = next
	zap.S().Infow("vehicle created", "id", v.ID, "plate", v.Plate)
	return v, nil
}

// Update overwrites the identified vehicle with every present input field,
// keeping its position in the collection, and persists before returning
func (s *Store) Update(id string, in VehicleInput) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Vehicle{}, &NotFoundError{ID: id}
	}
	v, err := normalizeForUpdate(s.vehicles[i], in)
	if err != nil {
		return models.Vehicle{}, err
	}
	next := append([]models.Vehicle(nil), s.vehicles...)
	next[i] = v
	if err := s.persist(next); err != nil {
		return models.Vehicle{}, err
	}
	s.vehicles = next
	return v, nil
}

// Delete removes the identified vehicle. There is no tombstone and no
// soft-delete; confirmation is the caller's concern.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	next := append(append([]models.Vehicle(nil), s.vehicles[:i]...), s.vehicles[i+1:]...)
	if err := s.persist(next); err != nil {
		return err
	}
	s.vehicles = next
	zap.S().Infow("vehicle deleted", "id", id)
	return nil
}

// ReplaceAll bulk-sets the collection and persists it
func (s *Store) ReplaceAll(vehicles []models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]models.Vehicle{}, vehicles...)
	if err := s.persist(next); err != nil {
		return err
	}
	s.vehicles = next
	return nil
}

// AddMaintenance appends one entry to the vehicle's maintenance history.
// Insertion order is display order.
func (s *Store) AddMaintenance(id string, e models.MaintenanceEntry) (models.Vehicle, error) {
	if err := validDate("maintenance.date", e.Date); err != nil {
		return models.Vehicle{}, err
	}
	if e.Km < 0 {
		return models.Vehicle{}, &ValidationError{Field: "maintenance.km", Reason: "must not be negative"}
	}
	if e.Cost < 0 {
		return models.Vehicle{}, &ValidationError{Field: "maintenance.cost", Reason: "must not be negative"}
	}
	return s.appendTo(id, func(v *models.Vehicle) {
		v.Maintenance = append(v.Maintenance, e)
	})
}

// AddCrash appends one entry to the vehicle's incident history
func (s *Store) AddCrash(id string, e models.CrashEntry) (models.Vehicle, error) {
	if err := validDate("crash.date", e.Date); err != nil {
		return models.Vehicle{}, err
	}
	switch e.Severity {
	case models.SeverityMinor, models.SeverityModerate, models.SeveritySevere:
	default:
		return models.Vehicle{}, &ValidationError{Field: "crash.severity", Reason: "must be minor, moderate or severe"}
	}
	if e.Cost < 0 {
		return models.Vehicle{}, &ValidationError{Field: "crash.cost", Reason: "must not be negative"}
	}
	return s.appendTo(id, func(v *models.Vehicle) {
		v.Crashes = append(v.Crashes, e)
	})
}

// AddDocument appends document metadata to the vehicle
func (s *Store) AddDocument(id string, d models.Document) (models.Vehicle, error) {
	if strings.TrimSpace(d.Name) == "" {
		return models.Vehicle{}, &ValidationError{Field: "doc.name", Reason: "must not be blank"}
	}
	return s.appendTo(id, func(v *models.Vehicle) {
		v.Docs = append(v.Docs, d)
	})
}

func (s *Store) appendTo(id string, mutate func(*models.Vehicle)) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Vehicle{}, &NotFoundError{ID: id}
	}
	next := append([]models.Vehicle(nil), s.vehicles...)
	mutate(&next[i])
	if err := s.persist(next); err != nil {
		return models.Vehicle{}, err
	}
	s.vehicles = next
	return next[i], nil
}

// indexOf is called with the lock held
func (s *Store) indexOf(id string) int {
	for i, v := range s.vehicles {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the candidate collection to the snapshot. The in-memory
// collection is only swapped after the write succeeds, so a failed write
// leaves prior state untouched.
func (s *Store) persist(vehicles []models.Vehicle) error {
	b, err := json.Marshal(vehicles)
	if err != nil {
		return err
	}
	return s.snap.Write(storage.VehiclesKey, b)
}
