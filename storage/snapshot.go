package storage

//go:generate mockery --name Snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot keys, one self-contained serialized object per key
const (
	VehiclesKey = "dw_fleet_vehicles"
	PrefsKey    = "dw_prefs"
	AccountKey  = "dw_user"
)

// ErrNoSnapshot is returned by Read when no snapshot exists for the key
var ErrNoSnapshot = errors.New("storage: no snapshot for key")

// Snapshot is the persistence collaborator: a passive target that stores one
// serialized object per key. Writes must be durable before returning.
type Snapshot interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

type fileSnapshot struct {
	dir string
}

// NewFileSnapshot returns a Snapshot backed by one JSON file per key under dir
func NewFileSnapshot(dir string) (Snapshot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir %q: %w", dir, err)
	}
	return &fileSnapshot{dir: dir}, nil
}

func (f *fileSnapshot) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *fileSnapshot) Read(key string) ([]byte, error) {
	b, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSnapshot
	}
	return b, err
}

// Write replaces the snapshot for key. The write goes to a temp file first so
// a crash mid-write never leaves a truncated snapshot behind.
func (f *fileSnapshot) Write(key string, data []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}
