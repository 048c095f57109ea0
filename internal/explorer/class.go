// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package explorer

import "github.com/taibuivan/panelkit/internal/widget"

// Widget is an explorer placed inside another widget, such as a workspace tab.
//
// It renders a lazy reference: the client fetches the explorer's own tree
// (and with it the instance's selection) from the explorer endpoint.
type Widget struct {
	options Options
	cfg     widget.Config
}

func (service *Service) factory(options Options) widget.Factory {
	return func(cfg widget.Config) (widget.Widget, error) {
		return &Widget{options: options, cfg: cfg}, nil
	}
}

func (w *Widget) Title() string {
	if title := w.cfg.String(widget.KeyTitle); title != "" {
		return title
	}
	if w.options.Title != "" {
		return w.options.Title
	}
	return w.options.Name
}

func (w *Widget) Node() *widget.Node {
	return &widget.Node{
		ItemID: w.cfg.String(widget.KeyName),
		Class:  ClassExplorer,
		Title:  w.Title(),
		Config: w.cfg.Merge(widget.Config{KeyExplorer: w.options.Name}),
		Items:  []*widget.Node{},
	}
}
