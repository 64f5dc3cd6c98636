// Package cas stores what golock last wrote into each settings file.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockStateStore = (*Store)(nil)

// Store implements ports.LockStateStore with one flat JSON file per project,
// at <root>/.golock/state.json, keyed by settings file path.
type Store struct {
	mu    sync.RWMutex
	cache map[string]map[string]domain.LockState
}

// NewStore creates a new, empty Store. State files are read on first use.
func NewStore() *Store {
	return &Store{cache: make(map[string]map[string]domain.LockState)}
}

// Get retrieves the lock state of a settings file.
// Returns nil, nil if not found.
func (s *Store) Get(root, settingsPath string) (*domain.LockState, error) {
	states, err := s.states(domain.DefaultStatePath(root))
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := states[filepath.Clean(settingsPath)]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

// Put stores the lock state and writes the project's state file.
func (s *Store) Put(root string, state domain.LockState) error {
	path := domain.DefaultStatePath(root)
	states, err := s.states(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state.SettingsPath = filepath.Clean(state.SettingsPath)
	states[state.SettingsPath] = state
	return save(path, states)
}

// states returns the cached states of a state file, loading it on first access.
func (s *Store) states(path string) (map[string]domain.LockState, error) {
	s.mu.RLock()
	states, ok := s.cache[path]
	s.mu.RUnlock()
	if ok {
		return states, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if states, ok := s.cache[path]; ok {
		return states, nil
	}
	states, err := load(path)
	if err != nil {
		return nil, err
	}
	s.cache[path] = states
	return states, nil
}

func load(path string) (map[string]domain.LockState, error) {
	states := make(map[string]domain.LockState)

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return states, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return states, nil
	}

	if err := json.Unmarshal(data, &states); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}
	return states, nil
}

func save(path string, states map[string]domain.LockState) error {
	data, err := json.MarshalIndent(states, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}

	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}
