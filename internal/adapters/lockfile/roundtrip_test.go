package lockfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/golock/internal/adapters/lockfile"
	"go.trai.ch/golock/internal/adapters/settings"
	"go.trai.ch/golock/internal/core/domain"
)

// readBack loads root's settings the way the lock manager does and decodes the lock list.
func readBack(t *testing.T, root string) []domain.Notation {
	t.Helper()

	host, err := settings.NewLoader().Load(root)
	require.NoError(t, err)

	r := settings.NewResolver()
	ext, ok := r.Lookup(host, domain.LockExtensionProperty)
	require.True(t, ok)
	raw, ok := r.Lookup(ext, domain.LockProperty)
	require.True(t, ok)

	notations, ok, err := lockfile.NewCodec().Decode(raw)
	require.NoError(t, err)
	require.True(t, ok)
	return notations
}

func TestRoundTrip_ThroughSettingsFile(t *testing.T) {
	t.Parallel()

	notations := []domain.Notation{
		{"name": "github.com/a/b", "version": "v1.2.3"},
		{"name": "github.com/c/d", "vcs": "git", "commit": "0123456789abcdef", "url": "https://github.com/c/d.git"},
		{"name": `quote"d`, "note": `back\slash`},
		{"name": "ws", "note": "tab\there\nnewline\r\nform\fback\b"},
		{"name": "ctl", "note": "\x01\x1f\x7f"},
		{"name": "unicode", "note": "héllo wörld ✓ 日本"},
		{"name": "odd keys", "a.b": "dotted", "has space": "x"},
		{"name": "empty value", "version": ""},
	}

	codec := lockfile.NewCodec()
	entries := make([]string, 0, len(notations))
	for _, n := range notations {
		entry, err := codec.Encode(n)
		require.NoError(t, err)
		entries = append(entries, entry)
	}

	root := t.TempDir()
	path := domain.SettingsPath(root)
	require.NoError(t, os.WriteFile(path, []byte("title = \"demo\"\n"), domain.FilePerm))

	_, _, err := lockfile.NewWriter().Write(path, entries)
	require.NoError(t, err)

	assert.Equal(t, notations, readBack(t, root))
}

func TestRoundTrip_EmptyLock(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, _, err := lockfile.NewWriter().Write(filepath.Join(root, domain.SettingsFileName), nil)
	require.NoError(t, err)

	assert.Empty(t, readBack(t, root))
}
