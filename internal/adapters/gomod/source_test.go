package gomod_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/golock/internal/adapters/gomod"
	"go.trai.ch/golock/internal/core/domain"
)

const goMod = `module example.com/app

go 1.25

require (
	github.com/a/a v1.0.0
	github.com/b/b v1.2.3
	example.com/local v0.0.0
	github.com/c/c v0.3.0 // indirect
	github.com/d/d v1.4.0
)

replace example.com/local => ../local

replace github.com/c/c => github.com/fork/c v0.3.1

replace github.com/d/d v1.3.0 => github.com/wrong/d v9.9.9
`

func writeGoMod(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.GoModFileName), []byte(content), domain.FilePerm))
	return root
}

func TestSource_Dependencies(t *testing.T) {
	t.Parallel()

	set, err := gomod.NewSource().Dependencies(writeGoMod(t, goMod))
	require.NoError(t, err)

	deps := slices.Collect(set.All())
	require.Len(t, deps, 5)

	assert.Equal(t, &domain.ModuleDependency{Path: domain.NewInternedString("github.com/a/a"), Version: "v1.0.0"}, deps[0])
	assert.Equal(t, &domain.ModuleDependency{
		Path:    domain.NewInternedString("github.com/b/b"),
		Version: "v1.2.3",
	}, deps[1])
	assert.Equal(t, &domain.LocalDependency{Path: domain.NewInternedString("example.com/local"), Dir: "../local"}, deps[2])
	assert.Equal(t, &domain.ModuleDependency{
		Path:    domain.NewInternedString("github.com/c/c"),
		Version: "v0.3.1",
		Source:  "github.com/fork/c",
	}, deps[3])
	assert.Equal(t, &domain.ModuleDependency{Path: domain.NewInternedString("github.com/d/d"), Version: "v1.4.0"}, deps[4])

	assert.Len(t, set.Lockable(), 4)
}

func TestSource_Dependencies_VersionSpecificReplaceWins(t *testing.T) {
	t.Parallel()

	root := writeGoMod(t, `module example.com/app

require github.com/a/a v1.0.0

replace github.com/a/a => github.com/any/a v0.0.1

replace github.com/a/a v1.0.0 => github.com/exact/a v1.0.2
`)

	set, err := gomod.NewSource().Dependencies(root)
	require.NoError(t, err)

	dep, ok := set.Get("github.com/a/a")
	require.True(t, ok)
	assert.Equal(t, "github.com/exact/a", dep.(*domain.ModuleDependency).Source)
}

func TestSource_Dependencies_Errors(t *testing.T) {
	t.Parallel()

	_, err := gomod.NewSource().Dependencies(t.TempDir())
	require.ErrorContains(t, err, domain.ErrModuleFileNotFound.Error())

	_, err = gomod.NewSource().Dependencies(writeGoMod(t, "module\nrequire ("))
	require.ErrorContains(t, err, domain.ErrModuleFileParseFailed.Error())

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, domain.GoModFileName), domain.DirPerm))
	_, err = gomod.NewSource().Dependencies(dir)
	require.ErrorContains(t, err, domain.ErrModuleFileReadFailed.Error())
}
