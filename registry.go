package numfmt

import (
	"fmt"
	"sync"
)

// Registry is an immutable, ordered set of locale profiles. It may be shared
// across goroutines.
type Registry struct {
	profiles map[string]Profile
	order    []string
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the registry of compiled-in locales.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		registry, err := NewRegistry(defaultProfiles...)
		if err != nil {
			panic(fmt.Sprintf("numfmt: compiled-in locales are invalid: %v", err))
		}
		defaultRegistry = registry
	})
	return defaultRegistry
}

// NewRegistry validates the profiles and freezes them in the given order.
func NewRegistry(profiles ...Profile) (*Registry, error) {
	r := &Registry{
		profiles: make(map[string]Profile, len(profiles)),
		order:    make([]string, 0, len(profiles)),
	}

	for _, profile := range profiles {
		if err := profile.validate(); err != nil {
			return nil, err
		}
		if _, exists := r.profiles[profile.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocale, profile.ID)
		}
		r.profiles[profile.ID] = profile
		r.order = append(r.order, profile.ID)
	}

	return r, nil
}

// Extend returns a new registry holding the receiver's profiles plus the given
// ones. A profile whose identifier already exists replaces the old entry in
// place; new identifiers are appended. The receiver is left untouched.
func (r *Registry) Extend(profiles ...Profile) (*Registry, error) {
	merged := r.Profiles()
	index := make(map[string]int, len(merged))
	for i, profile := range merged {
		index[profile.ID] = i
	}

	seen := make(map[string]struct{}, len(profiles))
	for _, profile := range profiles {
		if _, dup := seen[profile.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocale, profile.ID)
		}
		seen[profile.ID] = struct{}{}

		if i, ok := index[profile.ID]; ok {
			merged[i] = profile
			continue
		}
		index[profile.ID] = len(merged)
		merged = append(merged, profile)
	}

	return NewRegistry(merged...)
}

// Lookup returns the profile registered under id. Matching is exact and
// case-sensitive.
func (r *Registry) Lookup(id string) (Profile, error) {
	if r != nil {
		if profile, ok := r.profiles[id]; ok {
			return profile, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %s", ErrUnknownLocale, id)
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	if r == nil {
		return false
	}
	_, ok := r.profiles[id]
	return ok
}

// Identifiers returns the registered identifiers in insertion order.
func (r *Registry) Identifiers() []string {
	if r == nil || len(r.order) == 0 {
		return nil
	}
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Profiles returns every profile in insertion order.
func (r *Registry) Profiles() []Profile {
	if r == nil || len(r.order) == 0 {
		return nil
	}
	out := make([]Profile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.profiles[id])
	}
	return out
}

// Len returns the number of registered locales.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}
