// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package workspace composes dynamic tab workspaces.

A workspace shows a fixed dashboard tab followed by the tabs stored for its
instance. Clients load components into tabs by name ("cmp0", "cmp1", ...);
the ordinal suffix decides whether a delivered component is appended or
replaces an existing tab in place.

Tab lifecycle:

	Created (deliver_component) → Active → Removed (server_remove_tab / server_remove_all)

The dashboard is synthesized on every pass, is never stored and never removed.
*/
package workspace

import (
	"context"
	"strconv"
	"strings"

	"github.com/taibuivan/panelkit/internal/platform/apperr"
	"github.com/taibuivan/panelkit/internal/platform/constants"
	"github.com/taibuivan/panelkit/internal/platform/sec"
	"github.com/taibuivan/panelkit/internal/widget"
	"github.com/taibuivan/panelkit/pkg/convert"
)

// ClassWorkspace is the node class of a workspace root.
const ClassWorkspace = "Workspace"

// KeyAlwaysReloadFirstTab is surfaced in the workspace root config.
const KeyAlwaysReloadFirstTab = "alwaysReloadFirstTab"

// ErrStaleTabs is returned when another write to the same instance landed
// between a read and the write based on it.
var ErrStaleTabs = apperr.Conflict("Workspace tabs changed concurrently; reload and retry")

// Descriptor is one stored tab.
type Descriptor struct {
	Name          string        `json:"name"`
	ComponentType string        `json:"type"`
	Config        widget.Config `json:"config"`
	Title         string        `json:"title"`
	Closable      bool          `json:"closable"`
}

// Ordinal parses the index encoded in a tab name ("cmp3" → 3).
func Ordinal(name string) int {
	return convert.SuffixInt(name, constants.TabNamePrefix)
}

// IsTabName reports whether name is the tab prefix followed by a non-negative integer.
func IsTabName(name string) bool {
	suffix, ok := strings.CutPrefix(name, constants.TabNamePrefix)
	if !ok || suffix == "" {
		return false
	}
	ordinal, err := strconv.Atoi(suffix)
	return err == nil && ordinal >= 0 && strconv.Itoa(ordinal) == suffix
}

// Instance identifies one workspace within one session.
type Instance struct {
	Session   string
	Workspace string
}

// Key is the storage key of the instance.
func (i Instance) Key() string {
	return sec.KeyDigest(i.Session, i.Workspace)
}

// Options declares one workspace.
type Options struct {
	Name  string
	Title string

	// DashboardTitle and DashboardHTML configure the fixed first tab.
	DashboardTitle string
	DashboardHTML  string

	// AlwaysReloadFirstTab asks the client to refetch the first tab on activation.
	AlwaysReloadFirstTab bool
}

// Repository defines the storage contract for stored tabs.
//
// Versions start at 0 for an instance that was never written and grow by one
// with every successful Save.
type Repository interface {

	/*
		Load returns the stored tabs in order and the instance's version.
	*/
	Load(context context.Context, instance string) ([]Descriptor, int64, error)

	/*
		Save replaces the stored tabs if the instance is still at expectedVersion.

		Returns:
		  - error: [ErrStaleTabs] when the version moved, or storage failures
	*/
	Save(context context.Context, instance string, tabs []Descriptor, expectedVersion int64) error
}

// dashboardConfig is the raw configuration of the fixed first tab.
func (o Options) dashboardConfig() widget.Config {
	title := o.DashboardTitle
	if title == "" {
		title = constants.DefaultDashboardTitle
	}

	return widget.Config{
		widget.KeyName:  constants.ItemDashboard,
		widget.KeyTitle: title,
		widget.KeyHTML:  o.DashboardHTML,
	}
}
