// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"net/http"

	"github.com/taibuivan/panelkit/internal/platform/respond"
)

// Catalog lists the names a client may load or open.
type Catalog struct {
	Components []string `json:"components"`
	Explorers  []string `json:"explorers"`
	Workspaces []string `json:"workspaces"`
}

// NameLister is implemented by the widget registry and the composer services.
type NameLister interface {
	Names() []string
}

// NewComponentsHandler serves the catalog behind the client's "load in tab" menu.
func NewComponentsHandler(components, explorers, workspaces NameLister) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		respond.OK(writer, Catalog{
			Components: components.Names(),
			Explorers:  explorers.Names(),
			Workspaces: workspaces.Names(),
		})
	}
}
