// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package widget

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/taibuivan/panelkit/internal/platform/apperr"
	"github.com/taibuivan/panelkit/internal/platform/validate"
)

// suggestionDistance bounds how far a typo may be from a registered name.
const suggestionDistance = 3

// Factory builds a widget instance from its configuration.
type Factory func(cfg Config) (Widget, error)

// Class is a loadable widget type.
type Class struct {
	Name    string
	factory Factory
}

// New instantiates the class. The instance always sees its own class name
// under [KeyType].
func (c *Class) New(cfg Config) (Widget, error) {
	return c.factory(cfg.Merge(Config{KeyType: c.Name}))
}

// UnknownComponentError reports a class name that is not registered.
type UnknownComponentError struct {
	Name       string
	Suggestion string
}

func (e *UnknownComponentError) Error() string {
	return fmt.Sprintf("widget: unknown component %q", e.Name)
}

// AppError implements [apperr.Coder].
func (e *UnknownComponentError) AppError() *apperr.AppError {
	return apperr.UnknownComponent(e.Name, e.Suggestion)
}

// # Registry

/*
Registry is the closed set of widget classes the server can instantiate.

Client-supplied type names are only ever looked up here; there is no fallback
to resolving arbitrary type paths, so a client can load exactly the classes
the server registered and nothing else.
*/
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

// Register adds a class under name. Names must be identifiers and unique.
func (r *Registry) Register(name string, factory Factory) error {
	validator := &validate.Validator{}
	if err := validator.Required("name", name).Identifier("name", name).Err(); err != nil {
		return fmt.Errorf("widget: invalid class name %q: %w", name, err)
	}
	if factory == nil {
		return fmt.Errorf("widget: class %s has no factory", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[name]; exists {
		return fmt.Errorf("widget: class %s registered twice", name)
	}
	r.classes[name] = &Class{Name: name, factory: factory}

	return nil
}

// Derive registers name as a preset of base: defaults are applied under the
// caller's configuration, then the base class builds the instance.
func (r *Registry) Derive(name, base string, defaults Config) error {
	baseClass, err := r.Load(base)
	if err != nil {
		return err
	}

	return r.Register(name, func(cfg Config) (Widget, error) {
		return baseClass.factory(defaults.Merge(cfg).Merge(Config{KeyClass: base}))
	})
}

// Load resolves a class by name or fails with [*UnknownComponentError].
func (r *Registry) Load(name string) (*Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	class, ok := r.classes[name]
	if !ok {
		return nil, &UnknownComponentError{Name: name, Suggestion: r.closest(name)}
	}
	return class, nil
}

// Names returns the registered class names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// closest returns the registered name nearest to name, if any is close enough.
// Callers must hold the read lock.
func (r *Registry) closest(name string) string {
	best, bestDistance := "", suggestionDistance+1
	for candidate := range r.classes {
		distance := levenshtein.ComputeDistance(name, candidate)
		if distance < bestDistance || (distance == bestDistance && candidate < best) {
			best, bestDistance = candidate, distance
		}
	}
	if bestDistance > suggestionDistance {
		return ""
	}
	return best
}
