// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreAuthorTable represents the 'core.author' table
type CoreAuthorTable struct {
	Table    string
	ID       string
	Name     string
	Bio      string
	ImageURL string
}

// CoreAuthor is the schema definition for core.author
var CoreAuthor = CoreAuthorTable{
	Table:    "core.author",
	ID:       "id",
	Name:     "name",
	Bio:      "bio",
	ImageURL: "imageurl",
}

func (t CoreAuthorTable) Columns() []string {
	return []string{t.ID, t.Name, t.Bio, t.ImageURL}
}

// CoreComicAuthorTable represents the 'core.comicauthor' join table
type CoreComicAuthorTable struct {
	Table    string
	ID       string
	ComicID  string
	AuthorID string
	Role     string
}

// CoreComicAuthor is the schema definition for core.comicauthor
var CoreComicAuthor = CoreComicAuthorTable{
	Table:    "core.comicauthor",
	ID:       "id",
	ComicID:  "comicid",
	AuthorID: "authorid",
	Role:     "role",
}

func (t CoreComicAuthorTable) Columns() []string {
	return []string{t.ID, t.ComicID, t.AuthorID, t.Role}
}
