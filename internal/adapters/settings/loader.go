// Package settings reads the project's settings.toml and resolves properties on it.
package settings

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HostConfigLoader = (*Loader)(nil)

// Loader decodes settings.toml into a generic map.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the decoded settings of the project at root.
// A project without settings.toml yields an empty map.
func (l *Loader) Load(root string) (any, error) {
	path := domain.SettingsPath(root)

	data, err := os.ReadFile(path) //nolint:gosec // path is the project's settings file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	settings := map[string]any{}
	if _, err := toml.Decode(string(data), &settings); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}
	return settings, nil
}
