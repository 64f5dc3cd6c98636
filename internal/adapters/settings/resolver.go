package settings

import "go.trai.ch/golock/internal/core/ports"

var _ ports.PropertyResolver = (*Resolver)(nil)

// PropertyHolder is implemented by host objects that expose their own properties.
type PropertyHolder interface {
	Property(name string) (any, bool)
}

// Resolver looks up properties on decoded settings tables and property holders.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Lookup returns the named property of target. Unsupported targets have no properties.
func (r *Resolver) Lookup(target any, name string) (any, bool) {
	switch t := target.(type) {
	case map[string]any:
		v, ok := t[name]
		return v, ok
	case PropertyHolder:
		return t.Property(name)
	default:
		return nil, false
	}
}
