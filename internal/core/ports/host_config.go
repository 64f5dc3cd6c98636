package ports

//go:generate go run go.uber.org/mock/mockgen -source=host_config.go -destination=mocks/mock_host_config.go -package=mocks

// HostConfigLoader loads the host settings object of a project.
type HostConfigLoader interface {
	// Load returns the settings object for the project rooted at root.
	// A missing settings file yields an empty object, not an error.
	Load(root string) (any, error)
}

// PropertyResolver looks up named properties on objects the core does not own.
type PropertyResolver interface {
	// Lookup returns the value of the named property and whether it was found.
	Lookup(target any, name string) (value any, found bool)
}
