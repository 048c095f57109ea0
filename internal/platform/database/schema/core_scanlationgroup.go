// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreGroupTable represents the 'core.scanlationgroup' table
type CoreGroupTable struct {
	Table    string
	ID       string
	Name     string
	Slug     string
	Website  string
	IsActive string
}

// CoreGroup is the schema definition for core.scanlationgroup
var CoreGroup = CoreGroupTable{
	Table:    "core.scanlationgroup",
	ID:       "id",
	Name:     "name",
	Slug:     "slug",
	Website:  "website",
	IsActive: "isactive",
}

func (t CoreGroupTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.Website, t.IsActive}
}
