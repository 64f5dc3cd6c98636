package locker_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/core/ports/mocks"
	"go.trai.ch/golock/internal/engine/locker"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader   *mocks.MockHostConfigLoader
	resolver *mocks.MockPropertyResolver
	parser   *mocks.MockNotationParser
	codec    *mocks.MockLockCodec
	writer   *mocks.MockLockRegionWriter
	logger   *mocks.MockLogger
	manager  *locker.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockHostConfigLoader(ctrl),
		resolver: mocks.NewMockPropertyResolver(ctrl),
		parser:   mocks.NewMockNotationParser(ctrl),
		codec:    mocks.NewMockLockCodec(ctrl),
		writer:   mocks.NewMockLockRegionWriter(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.manager = locker.NewManager(f.loader, f.resolver, f.parser, f.codec, f.writer, f.logger)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return f
}

func module(name, version string) *domain.ModuleDependency {
	return &domain.ModuleDependency{Path: domain.NewInternedString(name), Version: version}
}

func TestManager_Lock(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	root := "/proj"
	a := module("github.com/a/a", "v1.0.0")
	b := module("github.com/b/b", "v2.0.0")
	local := &domain.LocalDependency{Path: domain.NewInternedString("example.com/local"), Dir: "../local"}
	set := domain.NewDependencySet(a, local, b)

	f.codec.EXPECT().Encode(a.ToLockNotation()).Return("A", nil)
	f.codec.EXPECT().Encode(b.ToLockNotation()).Return("B", nil)
	block := []string{"[ext]", "lock = [", "A,", "B,", "]"}
	f.writer.EXPECT().
		Write(filepath.Join(root, domain.SettingsFileName), []string{"A", "B"}).
		Return(block, true, nil)

	result, err := f.manager.Lock(root, set)
	require.NoError(t, err)
	assert.Equal(t, domain.LockResult{
		SettingsPath: filepath.Join(root, domain.SettingsFileName),
		Locked:       2,
		Skipped:      1,
		Changed:      true,
		Block:        block,
	}, result)
}

func TestManager_Lock_EmptySet(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.writer.EXPECT().Write(gomock.Any(), []string{}).Return([]string{"[ext]", "lock = [", "]"}, false, nil)

	result, err := f.manager.Lock("/proj", domain.NewDependencySet())
	require.NoError(t, err)
	assert.Zero(t, result.Locked)
	assert.False(t, result.Changed)
}

func TestManager_Lock_WriteError(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.codec.EXPECT().Encode(gomock.Any()).Return("A", nil)
	f.writer.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("disk full"))

	_, err := f.manager.Lock("/proj", domain.NewDependencySet(module("a", "v1")))
	require.ErrorContains(t, err, "disk full")
}

func TestManager_Lock_EncodeError(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.codec.EXPECT().Encode(gomock.Any()).Return("", domain.ErrUnencodableNotation)

	_, err := f.manager.Lock("/proj", domain.NewDependencySet(module("a", "v1")))
	require.ErrorContains(t, err, domain.ErrUnencodableNotation.Error())
}

func TestManager_GetLockedDependencies(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	host := map[string]any{"ext": "the-ext"}
	raw := []any{"entries"}
	n1 := domain.Notation{"name": "github.com/a/a", "version": "v1.0.0"}
	n2 := domain.Notation{"name": "github.com/b/b", "commit": "abc"}
	d1 := module("github.com/a/a", "v1.0.0")
	d2 := &domain.VcsDependency{Path: domain.NewInternedString("github.com/b/b"), Commit: "abc"}

	f.loader.EXPECT().Load("/proj").Return(host, nil)
	f.resolver.EXPECT().Lookup(host, domain.LockExtensionProperty).Return("the-ext", true)
	f.resolver.EXPECT().Lookup("the-ext", domain.LockProperty).Return(raw, true)
	f.codec.EXPECT().Decode(raw).Return([]domain.Notation{n1, n2}, true, nil)
	f.parser.EXPECT().Parse(n1).Return(d1, nil)
	f.parser.EXPECT().Parse(n2).Return(d2, nil)

	set, ok, err := f.manager.GetLockedDependencies("/proj")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("github.com/a/a"))
	assert.True(t, set.Contains("github.com/b/b"))
}

func TestManager_GetLockedDependencies_Absent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{
			name: "no extension table",
			setup: func(f *fixture) {
				f.loader.EXPECT().Load(gomock.Any()).Return(map[string]any{}, nil)
				f.resolver.EXPECT().Lookup(gomock.Any(), domain.LockExtensionProperty).Return(nil, false)
			},
		},
		{
			name: "no lock property",
			setup: func(f *fixture) {
				f.loader.EXPECT().Load(gomock.Any()).Return(map[string]any{}, nil)
				f.resolver.EXPECT().Lookup(gomock.Any(), domain.LockExtensionProperty).Return(map[string]any{}, true)
				f.resolver.EXPECT().Lookup(gomock.Any(), domain.LockProperty).Return(nil, false)
			},
		},
		{
			name: "lock is not a list",
			setup: func(f *fixture) {
				f.loader.EXPECT().Load(gomock.Any()).Return(map[string]any{}, nil)
				f.resolver.EXPECT().Lookup(gomock.Any(), domain.LockExtensionProperty).Return(map[string]any{}, true)
				f.resolver.EXPECT().Lookup(gomock.Any(), domain.LockProperty).Return("nope", true)
				f.codec.EXPECT().Decode("nope").Return(nil, false, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			tt.setup(f)

			set, ok, err := f.manager.GetLockedDependencies("/proj")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, set)
		})
	}
}

func TestManager_GetLockedDependencies_Errors(t *testing.T) {
	t.Parallel()

	t.Run("load failure", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.loader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrSettingsParseFailed)

		_, ok, err := f.manager.GetLockedDependencies("/proj")
		require.ErrorContains(t, err, domain.ErrSettingsParseFailed.Error())
		assert.False(t, ok)
	})

	t.Run("malformed entry", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.loader.EXPECT().Load(gomock.Any()).Return(map[string]any{}, nil)
		f.resolver.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(map[string]any{}, true).Times(2)
		f.codec.EXPECT().Decode(gomock.Any()).Return(nil, false, domain.ErrMalformedLockEntry)

		_, ok, err := f.manager.GetLockedDependencies("/proj")
		require.ErrorContains(t, err, domain.ErrMalformedLockEntry.Error())
		assert.False(t, ok)
	})

	t.Run("parse failure aborts the whole read", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.loader.EXPECT().Load(gomock.Any()).Return(map[string]any{}, nil)
		f.resolver.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(map[string]any{}, true).Times(2)
		f.codec.EXPECT().Decode(gomock.Any()).Return([]domain.Notation{
			{"name": "good", "version": "v1"},
			{"bogus": "x"},
		}, true, nil)
		f.parser.EXPECT().Parse(domain.Notation{"name": "good", "version": "v1"}).Return(module("good", "v1"), nil)
		f.parser.EXPECT().Parse(domain.Notation{"bogus": "x"}).Return(nil, domain.ErrMissingNotationName)

		set, ok, err := f.manager.GetLockedDependencies("/proj")
		require.ErrorContains(t, err, domain.ErrMissingNotationName.Error())
		assert.False(t, ok)
		assert.Nil(t, set)
	})
}
