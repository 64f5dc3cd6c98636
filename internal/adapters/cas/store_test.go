package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/golock/internal/adapters/cas"
	"go.trai.ch/golock/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()

	state := domain.LockState{
		SettingsPath: domain.SettingsPath(root),
		Digest:       "0123456789abcdef",
		Entries:      3,
		LockedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, store.Put(root, state))

	got, err := store.Get(root, domain.SettingsPath(root))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state, *got)

	_, err = os.Stat(domain.DefaultStatePath(root))
	require.NoError(t, err)
}

func TestStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	got, err := cas.NewStore().Get(t.TempDir(), "/nowhere/settings.toml")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Persistence(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := domain.SettingsPath(root)

	require.NoError(t, cas.NewStore().Put(root, domain.LockState{SettingsPath: path, Digest: "aa", Entries: 1}))

	got, err := cas.NewStore().Get(root, path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "aa", got.Digest)
	assert.Equal(t, 1, got.Entries)
}

func TestStore_Put_Overwrites(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := domain.SettingsPath(root)
	store := cas.NewStore()

	require.NoError(t, store.Put(root, domain.LockState{SettingsPath: path, Digest: "old"}))
	require.NoError(t, store.Put(root, domain.LockState{SettingsPath: path, Digest: "new"}))

	got, err := store.Get(root, path)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Digest)
}

func TestStore_KeyIsCleaned(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()
	messy := filepath.Join(root, "sub") + "/../" + domain.SettingsFileName

	require.NoError(t, store.Put(root, domain.LockState{SettingsPath: messy, Digest: "x"}))

	got, err := store.Get(root, domain.SettingsPath(root))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.SettingsPath(root), got.SettingsPath)
}

func TestStore_SeparateRoots(t *testing.T) {
	t.Parallel()

	a, b := t.TempDir(), t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(a, domain.LockState{SettingsPath: domain.SettingsPath(a), Digest: "a"}))

	got, err := store.Get(b, domain.SettingsPath(a))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_CorruptFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	statePath := domain.DefaultStatePath(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(statePath), domain.DirPerm))
	require.NoError(t, os.WriteFile(statePath, []byte("{nope"), domain.FilePerm))

	_, err := cas.NewStore().Get(root, domain.SettingsPath(root))
	require.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_EmptyFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	statePath := domain.DefaultStatePath(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(statePath), domain.DirPerm))
	require.NoError(t, os.WriteFile(statePath, nil, domain.FilePerm))

	got, err := cas.NewStore().Get(root, domain.SettingsPath(root))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Put_CreateDirError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.StateDirName), []byte("file"), domain.FilePerm))

	err := cas.NewStore().Put(root, domain.LockState{SettingsPath: domain.SettingsPath(root)})
	require.Error(t, err)
}
