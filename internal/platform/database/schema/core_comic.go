// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreComicTable represents the 'core.comic' table
type CoreComicTable struct {
	Table     string
	ID        string
	Title     string
	Slug      string
	Year      string
	Status    string
	CreatedAt string
}

// CoreComic is the schema definition for core.comic
var CoreComic = CoreComicTable{
	Table:     "core.comic",
	ID:        "id",
	Title:     "title",
	Slug:      "slug",
	Year:      "year",
	Status:    "status",
	CreatedAt: "createdat",
}

func (t CoreComicTable) Columns() []string {
	return []string{t.ID, t.Title, t.Slug, t.Year, t.Status, t.CreatedAt}
}
