// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/golock/internal/adapters/cas"
	_ "go.trai.ch/golock/internal/adapters/config"
	_ "go.trai.ch/golock/internal/adapters/fs"
	_ "go.trai.ch/golock/internal/adapters/gomod"
	_ "go.trai.ch/golock/internal/adapters/lockfile"
	_ "go.trai.ch/golock/internal/adapters/logger"
	_ "go.trai.ch/golock/internal/adapters/notation"
	_ "go.trai.ch/golock/internal/adapters/settings"
	// Register app and engine nodes.
	_ "go.trai.ch/golock/internal/app"
	_ "go.trai.ch/golock/internal/engine/locker"
)
