// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package explorer composes master-detail explorers.

An explorer owns two list widgets: a container pane and a collection pane.
Selecting a container record stores its id in the instance's selection state;
the next configuration pass scopes the collection by the foreign key that links
its records to that container.

Flow:

	select_container_record {id} → selection.Repository.Set
	GET /explorers/{name}        → Configure → scope {fk: id} → widget tree
*/
package explorer

import (
	"github.com/taibuivan/panelkit/internal/platform/constants"
	"github.com/taibuivan/panelkit/internal/widget"
)

// ClassExplorer is the node class of an explorer root.
const ClassExplorer = "Explorer"

// # Configuration Keys

const (
	KeyScope              = "scope"
	KeyStrongDefaultAttrs = "strongDefaultAttrs"
	KeyLoadInlineData     = "loadInlineData"
	KeyExplorer           = "explorer"
	KeyRelationship       = "relationship"
	KeyForeignKey         = "foreignKey"
	KeySelected           = "selectedContainerId"
)

// Options declares one explorer.
type Options struct {
	// Name identifies the explorer in URLs and in the widget registry.
	Name  string
	Title string

	// ContainerType and CollectionType override the entity types the panes
	// would otherwise report through their widget class.
	ContainerType  string
	CollectionType string

	ContainerConfig  widget.Config
	CollectionConfig widget.Config

	// RelationshipName overrides the relationship derived from the container type.
	RelationshipName string
}

// containerDefaults are applied under the caller's container configuration.
func containerDefaults() widget.Config {
	return widget.Config{
		widget.KeyRegion: constants.RegionWest,
		widget.KeyClass:  widget.ClassGrid,
	}
}

// collectionDefaults are applied under the caller's collection configuration.
func collectionDefaults() widget.Config {
	return widget.Config{
		widget.KeyClass: widget.ClassGrid,
	}
}

// withPlacementDefaults sizes a side-anchored pane unless the caller already did.
func withPlacementDefaults(cfg widget.Config) widget.Config {
	switch cfg.String(widget.KeyRegion) {
	case constants.RegionWest, constants.RegionEast:
		if !cfg.Has(widget.KeyWidth) {
			return cfg.Merge(widget.Config{widget.KeyWidth: constants.DefaultSideWidth})
		}
	case constants.RegionNorth, constants.RegionSouth:
		if !cfg.Has(widget.KeyHeight) {
			return cfg.Merge(widget.Config{widget.KeyHeight: constants.DefaultSideHeight})
		}
	}
	return cfg
}
