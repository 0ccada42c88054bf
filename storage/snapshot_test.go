package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drivewise/fleet-api/storage"
)

func TestFileSnapshotRoundTrip(t *testing.T) {
	snap, err := storage.NewFileSnapshot(t.TempDir())
	assert.NoError(t, err)

	err = snap.Write(storage.VehiclesKey, []byte(`[{"id":"veh_1"}]`))
	assert.NoError(t, err)

	b, err := snap.Read(storage.VehiclesKey)
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":"veh_1"}]`, string(b))
}

func TestFileSnapshotMissingKey(t *testing.T) {
	snap, err := storage.NewFileSnapshot(t.TempDir())
	assert.NoError(t, err)

	_, err = snap.Read(storage.PrefsKey)
	assert.ErrorIs(t, err, storage.ErrNoSnapshot)
}

func TestFileSnapshotOverwrite(t *testing.T) {
	snap, err := storage.NewFileSnapshot(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, snap.Write(storage.PrefsKey, []byte(`{"theme":"light"}`)))
	assert.NoError(t, snap.Write(storage.PrefsKey, []byte(`{"theme":"dark"}`)))

	b, err := snap.Read(storage.PrefsKey)
	assert.NoError(t, err)
	assert.Equal(t, `{"theme":"dark"}`, string(b))
}

func TestFileSnapshotKeysAreIndependent(t *testing.T) {
	dir := t.TempDir()
	snap, err := storage.NewFileSnapshot(dir)
	assert.NoError(t, err)

	assert.NoError(t, snap.Write(storage.VehiclesKey, []byte(`[]`)))
	assert.NoError(t, snap.Write(storage.AccountKey, []byte(`{}`)))

	_, err = os.Stat(filepath.Join(dir, storage.VehiclesKey+".json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, storage.AccountKey+".json"))
	assert.NoError(t, err)

	b, err := snap.Read(storage.VehiclesKey)
	assert.NoError(t, err)
	assert.Equal(t, `[]`, string(b))
}

func TestFileSnapshotCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := storage.NewFileSnapshot(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
