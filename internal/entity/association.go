// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"fmt"

	"github.com/taibuivan/panelkit/pkg/inflect"
)

// Association is the resolved link used to scope a collection by its container.
type Association struct {
	Name       string `json:"relationship"`
	ForeignKey string `json:"foreignKey"`
}

/*
Resolve determines the foreign key linking collection records to a container.

Description: When explicit is empty the relationship name defaults to the
underscored, singular name of the container type ("ScanlationGroup" →
"scanlation_group"). The relationship must exist on collection and point at
container; anything else is a [ConfigurationError], because a silently wrong
scope would leak or hide unrelated records.

Parameters:
  - collection: *Type (the "many" side)
  - container: *Type (the "one" side)
  - explicit: string (optional relationship name override)

Returns:
  - Association: relationship name and foreign key column
  - error: *ConfigurationError
*/
func Resolve(collection, container *Type, explicit string) (Association, error) {
	name := explicit
	if name == "" {
		name = inflect.RelationshipName(container.Name)
	}

	relationship, ok := collection.Relationship(name)
	if !ok {
		return Association{}, &ConfigurationError{
			Message: fmt.Sprintf("%s has no relationship %q", collection.Name, name),
		}
	}

	if relationship.Target != container.Name {
		return Association{}, &ConfigurationError{
			Message: fmt.Sprintf("%s.%s points at %s, not %s", collection.Name, name, relationship.Target, container.Name),
		}
	}

	return Association{Name: relationship.Name, ForeignKey: relationship.ForeignKey}, nil
}
