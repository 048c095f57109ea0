// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import "github.com/taibuivan/panelkit/internal/platform/database/schema"

// # Built-in Catalog

// Catalog returns the entity types backed by the core.* tables.
func Catalog() []*Type {
	return []*Type{
		{
			Name:       "Comic",
			Table:      schema.CoreComic.Table,
			PrimaryKey: schema.CoreComic.ID,
			Columns:    schema.CoreComic.Columns(),
		},
		{
			Name:       "Chapter",
			Table:      schema.CoreChapter.Table,
			PrimaryKey: schema.CoreChapter.ID,
			Columns:    schema.CoreChapter.Columns(),
			Relationships: []Relationship{
				{Name: "comic", Target: "Comic", ForeignKey: schema.CoreChapter.ComicID},
				{Name: "language", Target: "Language", ForeignKey: schema.CoreChapter.LanguageID},
				{Name: "scanlation_group", Target: "ScanlationGroup", ForeignKey: schema.CoreChapter.ScanlationGroupID},
			},
		},
		{
			Name:       "Author",
			Table:      schema.CoreAuthor.Table,
			PrimaryKey: schema.CoreAuthor.ID,
			Columns:    schema.CoreAuthor.Columns(),
		},
		{
			Name:       "ComicAuthor",
			Table:      schema.CoreComicAuthor.Table,
			PrimaryKey: schema.CoreComicAuthor.ID,
			Columns:    schema.CoreComicAuthor.Columns(),
			Relationships: []Relationship{
				{Name: "comic", Target: "Comic", ForeignKey: schema.CoreComicAuthor.ComicID},
				{Name: "author", Target: "Author", ForeignKey: schema.CoreComicAuthor.AuthorID},
			},
		},
		{
			Name:       "ScanlationGroup",
			Table:      schema.CoreGroup.Table,
			PrimaryKey: schema.CoreGroup.ID,
			Columns:    schema.CoreGroup.Columns(),
		},
		{
			Name:       "Language",
			Table:      schema.CoreLanguage.Table,
			PrimaryKey: schema.CoreLanguage.ID,
			Columns:    schema.CoreLanguage.Columns(),
		},
	}
}
