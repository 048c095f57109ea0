// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package widget models configured widget instances and the trees handed to the
client-side rendering toolkit.

Architecture:

  - Config: the loosely-typed key/value configuration every widget accepts.
  - Node: one element of a rendered tree (item id, class, region, children).
  - Registry: the closed name → class mapping; the only place where a widget
    type is resolved from a string.
  - Arena: configured instances indexed by item id, so a wrapper can read a
    sibling's declared title without owning it.
*/
package widget

import (
	"maps"

	"github.com/taibuivan/panelkit/pkg/convert"
)

// # Configuration Keys

const (
	KeyName   = "name"
	KeyType   = "type"
	KeyClass  = "class"
	KeyTitle  = "title"
	KeyModel  = "model"
	KeyRegion = "region"
	KeyWidth  = "width"
	KeyHeight = "height"
	KeyHTML   = "html"

	KeyClosable = "closable"
)

// # Config

// Config is a widget's key/value configuration.
type Config map[string]any

// Merge returns a new Config holding c overlaid by over. Neither input is modified.
func (c Config) Merge(over Config) Config {
	merged := make(Config, len(c)+len(over))
	maps.Copy(merged, c)
	maps.Copy(merged, over)
	return merged
}

// Clone returns a shallow copy of c; a nil Config clones to an empty one.
func (c Config) Clone() Config {
	return Config{}.Merge(c)
}

// Has reports whether key is set to a non-nil value.
func (c Config) Has(key string) bool {
	value, ok := c[key]
	return ok && value != nil
}

// String reads key as a string ("" when absent or not scalar).
func (c Config) String(key string) string {
	return convert.ToString(c[key])
}

// Bool reads key as a flag.
func (c Config) Bool(key string) bool {
	return convert.ToBool(c[key])
}

// Map reads a nested configuration. Missing or non-map values yield an empty Config.
func (c Config) Map(key string) Config {
	switch nested := c[key].(type) {
	case Config:
		return nested
	case map[string]any:
		return Config(nested)
	default:
		return Config{}
	}
}

// # Instances

// Widget is a configured widget instance.
type Widget interface {
	// Title is the declared title shown on tabs and panel headers.
	Title() string
	// Node renders the widget's own tree.
	Node() *Node
}

// DataBound is implemented by widgets that list records of an entity type.
type DataBound interface {
	// DataType is the entity type name the widget lists by default.
	DataType() string
}

// # Rendered Tree

// Node is one element of a rendered widget tree.
type Node struct {
	ItemID   string  `json:"itemId,omitempty"`
	Class    string  `json:"class,omitempty"`
	Title    string  `json:"title,omitempty"`
	Region   string  `json:"region,omitempty"`
	Layout   string  `json:"layout,omitempty"`
	Closable bool    `json:"closable"`
	Config   Config  `json:"config,omitempty"`
	Items    []*Node `json:"items"`
}

// Find returns the first descendant (or n itself) with the given item id.
func (n *Node) Find(itemID string) *Node {
	if n == nil {
		return nil
	}
	if n.ItemID == itemID {
		return n
	}
	for _, child := range n.Items {
		if found := child.Find(itemID); found != nil {
			return found
		}
	}
	return nil
}
