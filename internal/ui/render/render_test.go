package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/ui/render"
	"gopkg.in/yaml.v3"
)

func sampleSet() *domain.DependencySet {
	return domain.NewDependencySet(
		&domain.ModuleDependency{Path: domain.NewInternedString("github.com/a/a"), Version: "v1.0.0"},
		&domain.VcsDependency{Path: domain.NewInternedString("example.com/v"), Vcs: "git", Tag: "v2", URL: "https://example.com/v"},
		&domain.LocalDependency{Path: domain.NewInternedString("example.com/local"), Dir: "../local"},
	)
}

func TestRowOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, render.Row{Name: "m", Kind: "module", Ref: "v1", Source: "fork"},
		render.RowOf(&domain.ModuleDependency{Path: domain.NewInternedString("m"), Version: "v1", Source: "fork"}))
	assert.Equal(t, render.Row{Name: "v", Kind: "git", Ref: "abc", Source: "u"},
		render.RowOf(&domain.VcsDependency{Path: domain.NewInternedString("v"), Vcs: "git", Commit: "abc", Tag: "t", URL: "u"}))
	assert.Equal(t, render.Row{Name: "l", Kind: "local", Source: "../l"},
		render.RowOf(&domain.LocalDependency{Path: domain.NewInternedString("l"), Dir: "../l"}))
}

func TestDependencies_Plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.Dependencies(&buf, sampleSet(), render.FormatPlain))
	assert.Equal(t, "github.com/a/a\nexample.com/v\nexample.com/local\n", buf.String())
}

func TestDependencies_Table(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, render.Dependencies(&buf, sampleSet(), render.FormatTable))

	out := buf.String()
	for _, want := range []string{"NAME", "KIND", "github.com/a/a", "v1.0.0", "example.com/v", "../local"} {
		assert.Contains(t, out, want)
	}
}

func TestDependencies_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.Dependencies(&buf, sampleSet(), render.FormatYAML))

	var got []map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []map[string]string{
		{"name": "github.com/a/a", "version": "v1.0.0"},
		{"name": "example.com/v", "vcs": "git", "tag": "v2", "url": "https://example.com/v"},
	}, got)
}

func TestDependencies_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := render.Dependencies(&bytes.Buffer{}, sampleSet(), render.Format("xml"))
	require.ErrorContains(t, err, render.ErrUnknownFormat.Error())
}

func TestStatus(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name   string
		report domain.StatusReport
		want   string
	}{
		{
			name:   "clean",
			report: domain.StatusReport{Status: domain.StatusClean, SettingsPath: "/p/settings.toml", Digest: "aa"},
			want:   "✓ clean /p/settings.toml digest=aa\n",
		},
		{
			name: "modified",
			report: domain.StatusReport{
				Status:       domain.StatusModified,
				SettingsPath: "/p/settings.toml",
				Digest:       "bb",
				Recorded:     &domain.LockState{Digest: "aa"},
			},
			want: "✗ modified /p/settings.toml digest=bb recorded=aa\n",
		},
		{
			name:   "unlocked",
			report: domain.StatusReport{Status: domain.StatusUnlocked, SettingsPath: "/p/settings.toml"},
			want:   "○ unlocked /p/settings.toml\n",
		},
		{
			name:   "untracked",
			report: domain.StatusReport{Status: domain.StatusUntracked, SettingsPath: "/p/settings.toml", Digest: "cc"},
			want:   "! untracked /p/settings.toml digest=cc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render.Status(&buf, tt.report))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
