package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/iconshift/pkg/errors"
	"github.com/arthur-debert/iconshift/pkg/filesystem"
)

func TestBackupAndRestore(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.WriteFile("project/AndroidManifest.xml", []byte("original"), 0644))

	store := NewStore(fs, "state/backups")

	backupPath, err := store.Backup("project/AndroidManifest.xml")
	require.NoError(t, err)

	// Mutate the original, then restore
	require.NoError(t, fs.WriteFile("project/AndroidManifest.xml", []byte("mutated"), 0644))
	require.NoError(t, store.Restore("project/AndroidManifest.xml"))

	data, err := fs.ReadFile("project/AndroidManifest.xml")
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	saved, err := fs.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, "original", string(saved))
}

func TestLatestPicksNewest(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.WriteFile("m.xml", []byte("v1"), 0644))

	store := NewStore(fs, "backups")
	clock := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	_, err := store.Backup("m.xml")
	require.NoError(t, err)

	require.NoError(t, fs.WriteFile("m.xml", []byte("v2"), 0644))
	clock = clock.Add(time.Minute)
	second, err := store.Backup("m.xml")
	require.NoError(t, err)

	latest, err := store.Latest("m.xml")
	require.NoError(t, err)
	assert.Equal(t, second, latest)

	data, err := fs.ReadFile(latest)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestLatestDistinguishesSameBaseName(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.WriteFile("a/AndroidManifest.xml", []byte("a"), 0644))
	require.NoError(t, fs.WriteFile("b/AndroidManifest.xml", []byte("b"), 0644))

	store := NewStore(fs, "backups")
	_, err := store.Backup("a/AndroidManifest.xml")
	require.NoError(t, err)
	_, err = store.Backup("b/AndroidManifest.xml")
	require.NoError(t, err)

	latest, err := store.Latest("b/AndroidManifest.xml")
	require.NoError(t, err)
	data, err := fs.ReadFile(latest)
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestLatestMissing(t *testing.T) {
	store := NewStore(filesystem.NewMemory(), "backups")

	_, err := store.Latest("never-backed-up.xml")
	require.Error(t, err)
	assert.Equal(t, errors.ErrBackupMissing, errors.GetCode(err))
}

func TestBackupMissingSource(t *testing.T) {
	store := NewStore(filesystem.NewMemory(), "backups")

	_, err := store.Backup("missing.xml")
	require.Error(t, err)
	assert.Equal(t, errors.ErrBackupCreate, errors.GetCode(err))
}
