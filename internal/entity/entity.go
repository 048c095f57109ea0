// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package entity describes the data types that list widgets browse.

An entity [Type] is resolvable by name and exposes enough reflection (table,
columns, belongs-to relationships) for an explorer to scope a collection by
its container. Types live in a closed [Registry] built at startup; nothing is
resolved from free-form class paths.
*/
package entity

import (
	"fmt"
	"slices"
	"sort"
)

// Relationship is a belongs-to link from the owning type to a container type.
type Relationship struct {
	// Name is the relationship name, conventionally the underscored container name ("comic").
	Name string
	// Target is the container type name ("Comic").
	Target string
	// ForeignKey is the column on the owning type holding the container id ("comicid").
	ForeignKey string
}

// Type is the reflection surface of one entity type.
type Type struct {
	Name          string
	Table         string
	PrimaryKey    string
	Columns       []string
	Relationships []Relationship
}

// Relationship looks up a belongs-to relationship by name.
func (t *Type) Relationship(name string) (Relationship, bool) {
	for _, relationship := range t.Relationships {
		if relationship.Name == name {
			return relationship, true
		}
	}
	return Relationship{}, false
}

// HasColumn reports whether column belongs to the type's table.
func (t *Type) HasColumn(column string) bool {
	return slices.Contains(t.Columns, column)
}

// # Registry

// Registry is the closed set of entity types known to the server.
//
// # Concurrency
//
// A Registry is immutable after [NewRegistry] and safe for concurrent reads.
type Registry struct {
	types map[string]*Type
}

// NewRegistry validates and indexes types by name.
//
// Every type needs a table and a primary key column, names must be unique,
// and each relationship must point at a registered type through a column the
// owning type actually has.
func NewRegistry(types ...*Type) (*Registry, error) {
	registry := &Registry{types: make(map[string]*Type, len(types))}

	for _, entityType := range types {
		if entityType.Name == "" || entityType.Table == "" {
			return nil, fmt.Errorf("entity: type %q needs a name and a table", entityType.Name)
		}
		if !entityType.HasColumn(entityType.PrimaryKey) {
			return nil, fmt.Errorf("entity: type %s: primary key %q is not a column", entityType.Name, entityType.PrimaryKey)
		}
		if _, exists := registry.types[entityType.Name]; exists {
			return nil, fmt.Errorf("entity: type %s registered twice", entityType.Name)
		}
		registry.types[entityType.Name] = entityType
	}

	for _, entityType := range types {
		for _, relationship := range entityType.Relationships {
			if _, ok := registry.types[relationship.Target]; !ok {
				return nil, fmt.Errorf("entity: %s.%s targets unknown type %s", entityType.Name, relationship.Name, relationship.Target)
			}
			if !entityType.HasColumn(relationship.ForeignKey) {
				return nil, fmt.Errorf("entity: %s.%s foreign key %q is not a column", entityType.Name, relationship.Name, relationship.ForeignKey)
			}
		}
	}

	return registry, nil
}

// Lookup resolves a type by name. Unknown names are a [ConfigurationError]
// because type names only ever come from server-side widget configuration.
func (r *Registry) Lookup(name string) (*Type, error) {
	entityType, ok := r.types[name]
	if !ok {
		return nil, &ConfigurationError{Message: fmt.Sprintf("unknown entity type %q", name)}
	}
	return entityType, nil
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
