// Package locker reads and writes the lock region of a project's settings file.
package locker

import (
	"fmt"

	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockedDependencyManager = (*Manager)(nil)

// Manager orchestrates the codec, the region writer and the host settings lookup.
// It keeps no state between calls.
type Manager struct {
	loader   ports.HostConfigLoader
	resolver ports.PropertyResolver
	parser   ports.NotationParser
	codec    ports.LockCodec
	writer   ports.LockRegionWriter
	logger   ports.Logger
}

// NewManager creates a new Manager.
func NewManager(
	loader ports.HostConfigLoader,
	resolver ports.PropertyResolver,
	parser ports.NotationParser,
	codec ports.LockCodec,
	writer ports.LockRegionWriter,
	logger ports.Logger,
) *Manager {
	return &Manager{
		loader:   loader,
		resolver: resolver,
		parser:   parser,
		codec:    codec,
		writer:   writer,
		logger:   logger,
	}
}

// GetLockedDependencies returns the dependencies recorded in the project's lock.
// ok is false when the settings carry no lock data, which callers treat as "resolve from scratch".
func (m *Manager) GetLockedDependencies(root string) (*domain.DependencySet, bool, error) {
	path := domain.SettingsPath(root)

	host, err := m.loader.Load(root)
	if err != nil {
		return nil, false, err
	}

	ext, found := m.resolver.Lookup(host, domain.LockExtensionProperty)
	if !found {
		m.logger.Info(fmt.Sprintf("no %s table in %s", domain.LockExtensionProperty, domain.SettingsFileName))
		return nil, false, nil
	}

	raw, found := m.resolver.Lookup(ext, domain.LockProperty)
	if !found {
		m.logger.Info(fmt.Sprintf("no lock data in %s", domain.SettingsFileName))
		return nil, false, nil
	}

	notations, ok, err := m.codec.Decode(raw)
	if err != nil {
		return nil, false, zerr.With(err, "path", path)
	}
	if !ok {
		m.logger.Warn(fmt.Sprintf("%s.%s in %s is not a list, ignoring it",
			domain.LockExtensionProperty, domain.LockProperty, domain.SettingsFileName))
		return nil, false, nil
	}

	set := domain.NewDependencySet()
	for i, notation := range notations {
		dep, err := m.parser.Parse(notation)
		if err != nil {
			err = zerr.With(err, "index", i)
			return nil, false, zerr.With(err, "path", path)
		}
		set.Add(dep)
	}

	return set, true, nil
}

// Lock writes the lock-capable members of set into the project's settings file.
// Writing the same set twice leaves the file byte-identical.
func (m *Manager) Lock(root string, set *domain.DependencySet) (domain.LockResult, error) {
	path := domain.SettingsPath(root)
	lockable := set.Lockable()

	entries := make([]string, 0, len(lockable))
	for _, dep := range lockable {
		entry, err := m.codec.Encode(dep.ToLockNotation())
		if err != nil {
			return domain.LockResult{}, zerr.With(err, "dependency", dep.Name())
		}
		entries = append(entries, entry)
	}

	block, changed, err := m.writer.Write(path, entries)
	if err != nil {
		return domain.LockResult{}, err
	}

	result := domain.LockResult{
		SettingsPath: path,
		Locked:       len(lockable),
		Skipped:      set.Len() - len(lockable),
		Changed:      changed,
		Block:        block,
	}

	if changed {
		m.logger.Info(fmt.Sprintf("locked %d dependencies, skipped %d", result.Locked, result.Skipped))
	} else {
		m.logger.Info(fmt.Sprintf("lock is up to date (%d dependencies)", result.Locked))
	}

	return result, nil
}
