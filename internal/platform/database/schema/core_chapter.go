// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreChapterTable represents the 'core.chapter' table
type CoreChapterTable struct {
	Table             string
	ID                string
	ComicID           string
	LanguageID        string
	ScanlationGroupID string
	Number            string
	Title             string
	Volume            string
	PublishedAt       string
}

// CoreChapter is the schema definition for core.chapter
var CoreChapter = CoreChapterTable{
	Table:             "core.chapter",
	ID:                "id",
	ComicID:           "comicid",
	LanguageID:        "languageid",
	ScanlationGroupID: "scanlationgroupid",
	Number:            "chapternumber",
	Title:             "title",
	Volume:            "volume",
	PublishedAt:       "publishedat",
}

func (t CoreChapterTable) Columns() []string {
	return []string{
		t.ID, t.ComicID, t.LanguageID, t.ScanlationGroupID,
		t.Number, t.Title, t.Volume, t.PublishedAt,
	}
}
