// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package widget

// Arena holds the widget instances of one configuration pass, indexed by item id.
//
// Wrappers query titles through the arena instead of holding their children,
// so no wrapper/child reference cycle exists. An Arena lives for a single
// request and is not safe for concurrent use.
type Arena struct {
	instances map[string]Widget
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{instances: make(map[string]Widget)}
}

// Put stores w under id, replacing any previous instance.
func (a *Arena) Put(id string, w Widget) {
	a.instances[id] = w
}

// Get returns the instance stored under id.
func (a *Arena) Get(id string) (Widget, bool) {
	w, ok := a.instances[id]
	return w, ok
}

// Title returns the declared title of the instance under id, or "" when absent.
func (a *Arena) Title(id string) string {
	if w, ok := a.instances[id]; ok {
		return w.Title()
	}
	return ""
}
