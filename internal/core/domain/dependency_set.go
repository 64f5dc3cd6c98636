package domain

import "iter"

// DependencySet is an insertion-ordered set of dependencies keyed by name.
// The zero value is not usable; call NewDependencySet.
type DependencySet struct {
	order []Dependency
	index map[InternedString]int
}

// NewDependencySet creates a set holding deps, dropping later duplicates.
func NewDependencySet(deps ...Dependency) *DependencySet {
	s := &DependencySet{
		order: make([]Dependency, 0, len(deps)),
		index: make(map[InternedString]int, len(deps)),
	}
	for _, dep := range deps {
		s.Add(dep)
	}
	return s
}

// Add inserts dep and reports whether it was new.
// A dependency whose name is already present is ignored.
func (s *DependencySet) Add(dep Dependency) bool {
	key := NewInternedString(dep.Name())
	if _, exists := s.index[key]; exists {
		return false
	}
	s.index[key] = len(s.order)
	s.order = append(s.order, dep)
	return true
}

// Get returns the dependency with the given name.
func (s *DependencySet) Get(name string) (Dependency, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[NewInternedString(name)]
	if !ok {
		return nil, false
	}
	return s.order[i], true
}

// Contains reports whether a dependency with the given name is present.
func (s *DependencySet) Contains(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Len returns the number of dependencies. A nil set is empty.
func (s *DependencySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// All yields the dependencies in insertion order.
func (s *DependencySet) All() iter.Seq[Dependency] {
	return func(yield func(Dependency) bool) {
		if s == nil {
			return
		}
		for _, dep := range s.order {
			if !yield(dep) {
				return
			}
		}
	}
}

// Lockable returns the lock-capable dependencies in insertion order.
func (s *DependencySet) Lockable() []LockEncodable {
	var out []LockEncodable
	for dep := range s.All() {
		if le, ok := dep.(LockEncodable); ok {
			out = append(out, le)
		}
	}
	return out
}
