package app

import (
	"go.trai.ch/golock/internal/adapters/config"
	"go.trai.ch/golock/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader *config.Loader
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, loader *config.Loader) *Components {
	return &Components{
		App:          app,
		Logger:       logger,
		ConfigLoader: loader,
	}
}
