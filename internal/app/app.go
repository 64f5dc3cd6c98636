// Package app implements the application layer for golock.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/core/ports"
	"go.trai.ch/golock/internal/engine/subpkg"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	locker   ports.LockedDependencyManager
	source   ports.DependencySource
	region   ports.LockRegionWriter
	walker   ports.FileWalker
	resolver ports.RootResolver
	hasher   ports.Hasher
	store    ports.LockStateStore
	logger   ports.Logger
	now      func() time.Time
}

// New creates a new App instance.
func New(
	locker ports.LockedDependencyManager,
	source ports.DependencySource,
	region ports.LockRegionWriter,
	walker ports.FileWalker,
	resolver ports.RootResolver,
	hasher ports.Hasher,
	store ports.LockStateStore,
	logger ports.Logger,
) *App {
	return &App{
		locker:   locker,
		source:   source,
		region:   region,
		walker:   walker,
		resolver: resolver,
		hasher:   hasher,
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock replaces the time source used for lock state timestamps.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// LockOptions configures a lock run.
type LockOptions struct {
	Root    string
	NoState bool
}

// Lock resolves the project's dependencies from go.mod and writes them into the lock region.
func (a *App) Lock(opts LockOptions) (domain.LockResult, error) {
	root, err := a.resolver.ResolveRoot(opts.Root)
	if err != nil {
		return domain.LockResult{}, err
	}

	set, err := a.source.Dependencies(root)
	if err != nil {
		return domain.LockResult{}, zerr.Wrap(err, domain.ErrLockFailed.Error())
	}

	result, err := a.locker.Lock(root, set)
	if err != nil {
		return domain.LockResult{}, zerr.Wrap(err, domain.ErrLockFailed.Error())
	}

	if opts.NoState {
		return result, nil
	}

	state := domain.LockState{
		SettingsPath: result.SettingsPath,
		Digest:       a.hasher.HashLines(result.Block),
		Entries:      result.Locked,
		LockedAt:     a.now().UTC(),
	}
	if err := a.store.Put(root, state); err != nil {
		return result, zerr.Wrap(err, domain.ErrLockFailed.Error())
	}

	return result, nil
}

// Locked returns the dependencies currently recorded in the project's lock.
// ok is false when the project has no lock data.
func (a *App) Locked(root string) (*domain.DependencySet, bool, error) {
	root, err := a.resolver.ResolveRoot(root)
	if err != nil {
		return nil, false, err
	}
	return a.locker.GetLockedDependencies(root)
}

// FilesOptions configures a subpackage file listing.
type FilesOptions struct {
	Root string
	// Subpackages are the specifiers to match; none means every file.
	Subpackages []string
	Ignores     []string
	Workers     int
}

// Files lists the files of the project that belong to the given subpackages, in walk order.
func (a *App) Files(ctx context.Context, opts FilesOptions) ([]string, error) {
	root, err := a.resolver.ResolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	var files []string
	for file, err := range a.walker.WalkFiles(root, opts.Ignores) {
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	subpackages := opts.Subpackages
	if len(subpackages) == 0 {
		subpackages = []string{domain.AllDescendants}
	}

	matched, err := subpkg.New(root, subpackages).Filter(ctx, files, opts.Workers)
	if err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("%d of %d files in %s", len(matched), len(files), strings.Join(subpackages, " ")))
	return matched, nil
}

// Status compares the lock region on disk with what golock last wrote.
func (a *App) Status(root string) (domain.StatusReport, error) {
	root, err := a.resolver.ResolveRoot(root)
	if err != nil {
		return domain.StatusReport{}, err
	}

	path := domain.SettingsPath(root)
	report := domain.StatusReport{SettingsPath: path}

	block, found, err := a.region.Read(path)
	if err != nil {
		return domain.StatusReport{}, err
	}
	if !found {
		report.Status = domain.StatusUnlocked
		return report, nil
	}
	report.Digest = a.hasher.HashLines(block)

	recorded, err := a.store.Get(root, path)
	if err != nil {
		return domain.StatusReport{}, err
	}
	report.Recorded = recorded

	switch {
	case recorded == nil:
		report.Status = domain.StatusUntracked
	case recorded.Digest == report.Digest:
		report.Status = domain.StatusClean
	default:
		report.Status = domain.StatusModified
	}
	return report, nil
}
