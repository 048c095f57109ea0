// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UIWorkspaceTable represents the 'ui.workspace' table: one row per
// workspace instance carrying the optimistic version of its tab list.
type UIWorkspaceTable struct {
	Table     string
	Instance  string
	Version   string
	UpdatedAt string
}

// UIWorkspace is the schema definition for ui.workspace
var UIWorkspace = UIWorkspaceTable{
	Table:     "ui.workspace",
	Instance:  "instance",
	Version:   "version",
	UpdatedAt: "updatedat",
}

// UIWorkspaceTabTable represents the 'ui.workspacetab' table: the ordered
// tab descriptors of a workspace instance.
type UIWorkspaceTabTable struct {
	Table         string
	Instance      string
	Position      string
	Name          string
	ComponentType string
	Config        string
	Title         string
	Closable      string
}

// UIWorkspaceTab is the schema definition for ui.workspacetab
var UIWorkspaceTab = UIWorkspaceTabTable{
	Table:         "ui.workspacetab",
	Instance:      "instance",
	Position:      "position",
	Name:          "name",
	ComponentType: "componenttype",
	Config:        "config",
	Title:         "title",
	Closable:      "closable",
}

// Columns lists the insertable columns in CopyFrom order.
func (t UIWorkspaceTabTable) Columns() []string {
	return []string{t.Instance, t.Position, t.Name, t.ComponentType, t.Config, t.Title, t.Closable}
}
