// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package widget

// # Built-in Classes

const (
	ClassPanel = "Panel"
	ClassGrid  = "Grid"
)

// RegisterBuiltins registers the Panel and Grid classes.
func RegisterBuiltins(registry *Registry) error {
	if err := registry.Register(ClassPanel, NewPanel); err != nil {
		return err
	}
	return registry.Register(ClassGrid, NewGrid)
}

// Panel is a static content panel (the workspace dashboard is one).
type Panel struct {
	cfg Config
}

// NewPanel is the [Factory] for [ClassPanel].
func NewPanel(cfg Config) (Widget, error) {
	return &Panel{cfg: cfg}, nil
}

func (p *Panel) Title() string {
	if title := p.cfg.String(KeyTitle); title != "" {
		return title
	}
	return ClassPanel
}

func (p *Panel) Node() *Node {
	return &Node{
		ItemID:   p.cfg.String(KeyName),
		Class:    ClassPanel,
		Title:    p.Title(),
		Closable: p.cfg.Bool(KeyClosable),
		Config:   p.cfg,
		Items:    []*Node{},
	}
}

// Grid lists the records of one entity type.
type Grid struct {
	cfg Config
}

// NewGrid is the [Factory] for [ClassGrid].
func NewGrid(cfg Config) (Widget, error) {
	return &Grid{cfg: cfg}, nil
}

func (g *Grid) Title() string {
	if title := g.cfg.String(KeyTitle); title != "" {
		return title
	}
	if model := g.cfg.String(KeyModel); model != "" {
		return model
	}
	return ClassGrid
}

// DataType implements [DataBound].
func (g *Grid) DataType() string {
	return g.cfg.String(KeyModel)
}

func (g *Grid) Node() *Node {
	return &Node{
		ItemID:   g.cfg.String(KeyName),
		Class:    ClassGrid,
		Title:    g.Title(),
		Closable: g.cfg.Bool(KeyClosable),
		Config:   g.cfg,
		Items:    []*Node{},
	}
}
