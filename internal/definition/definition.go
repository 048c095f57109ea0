// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package definition loads the widget definitions file.

The file declares derived component classes, explorers and workspaces in HCL:

	component "ChapterGrid" {
	  base   = "Grid"
	  config = { model = "Chapter" }
	}

	explorer "comic_chapters" {
	  container_type  = "Comic"
	  collection_type = "Chapter"
	}

	workspace "desk" {
	  dashboard_title = "Welcome"
	}

	fixture "Comic" {
	  rows = [{ id = 7, title = "Solo Leveling" }]
	}

Definitions are applied in declaration order: components first (a component may
derive from one declared above it), then explorers, then workspaces. Fixtures
only seed in-memory record readers.
*/
package definition

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/taibuivan/panelkit/internal/entity"
	"github.com/taibuivan/panelkit/internal/explorer"
	"github.com/taibuivan/panelkit/internal/records"
	"github.com/taibuivan/panelkit/internal/widget"
	"github.com/taibuivan/panelkit/internal/workspace"
)

// fileRoot is the top-level shape of a definitions file. Unknown blocks and
// attributes are decode errors.
type fileRoot struct {
	Components []*componentBlock `hcl:"component,block"`
	Explorers  []*explorerBlock  `hcl:"explorer,block"`
	Workspaces []*workspaceBlock `hcl:"workspace,block"`
	Fixtures   []*fixtureBlock   `hcl:"fixture,block"`
}

type componentBlock struct {
	Name   string    `hcl:"name,label"`
	Base   string    `hcl:"base"`
	Config cty.Value `hcl:"config,optional"`
}

type explorerBlock struct {
	Name             string    `hcl:"name,label"`
	Title            string    `hcl:"title,optional"`
	ContainerType    string    `hcl:"container_type,optional"`
	CollectionType   string    `hcl:"collection_type,optional"`
	Relationship     string    `hcl:"relationship,optional"`
	ContainerConfig  cty.Value `hcl:"container_config,optional"`
	CollectionConfig cty.Value `hcl:"collection_config,optional"`
}

type workspaceBlock struct {
	Name                 string `hcl:"name,label"`
	Title                string `hcl:"title,optional"`
	DashboardTitle       string `hcl:"dashboard_title,optional"`
	DashboardHTML        string `hcl:"dashboard_html,optional"`
	AlwaysReloadFirstTab bool   `hcl:"always_reload_first_tab,optional"`
}

type fixtureBlock struct {
	Type string    `hcl:"type,label"`
	Rows cty.Value `hcl:"rows"`
}

// Component is a derived widget class.
type Component struct {
	Name     string
	Base     string
	Defaults widget.Config
}

// Definitions is the decoded content of a definitions file.
type Definitions struct {
	Components []Component
	Explorers  []explorer.Options
	Workspaces []workspace.Options
	Fixtures   []Fixture
}

// Fixture holds sample rows for one entity type.
type Fixture struct {
	Type string
	Rows []records.Record
}

// Seeder accepts fixture rows.
type Seeder interface {
	Seed(typeName string, rows ...records.Record)
}

// Load reads and decodes the definitions file at path.
func Load(path string) (*Definitions, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definition: read %s: %w", path, err)
	}
	return Parse(src, path)
}

// Parse decodes definitions from HCL source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Definitions, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("definition: failed to parse %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("definition: failed to decode %s: %w", filename, diags)
	}

	definitions := &Definitions{}

	for _, block := range root.Components {
		defaults, err := toConfig(block.Config)
		if err != nil {
			return nil, fmt.Errorf("definition: component %s: %w", block.Name, err)
		}
		definitions.Components = append(definitions.Components, Component{
			Name:     block.Name,
			Base:     block.Base,
			Defaults: defaults,
		})
	}

	for _, block := range root.Explorers {
		containerConfig, err := toConfig(block.ContainerConfig)
		if err != nil {
			return nil, fmt.Errorf("definition: explorer %s container_config: %w", block.Name, err)
		}
		collectionConfig, err := toConfig(block.CollectionConfig)
		if err != nil {
			return nil, fmt.Errorf("definition: explorer %s collection_config: %w", block.Name, err)
		}

		definitions.Explorers = append(definitions.Explorers, explorer.Options{
			Name:             block.Name,
			Title:            block.Title,
			ContainerType:    block.ContainerType,
			CollectionType:   block.CollectionType,
			ContainerConfig:  containerConfig,
			CollectionConfig: collectionConfig,
			RelationshipName: block.Relationship,
		})
	}

	for _, block := range root.Workspaces {
		definitions.Workspaces = append(definitions.Workspaces, workspace.Options{
			Name:                 block.Name,
			Title:                block.Title,
			DashboardTitle:       block.DashboardTitle,
			DashboardHTML:        block.DashboardHTML,
			AlwaysReloadFirstTab: block.AlwaysReloadFirstTab,
		})
	}

	for _, block := range root.Fixtures {
		rows, err := toRows(block.Rows)
		if err != nil {
			return nil, fmt.Errorf("definition: fixture %s rows: %w", block.Type, err)
		}
		definitions.Fixtures = append(definitions.Fixtures, Fixture{Type: block.Type, Rows: rows})
	}

	return definitions, nil
}

// Apply registers the definitions with their owning registries.
func (d *Definitions) Apply(widgets *widget.Registry, explorers *explorer.Service, workspaces *workspace.Service) error {
	for _, component := range d.Components {
		if err := widgets.Derive(component.Name, component.Base, component.Defaults); err != nil {
			return fmt.Errorf("definition: component %s: %w", component.Name, err)
		}
	}

	for _, options := range d.Explorers {
		if err := explorers.Register(options); err != nil {
			return fmt.Errorf("definition: %w", err)
		}
	}

	for _, options := range d.Workspaces {
		if err := workspaces.Register(options); err != nil {
			return fmt.Errorf("definition: %w", err)
		}
	}

	return nil
}

// Seed hands every fixture to seeder after checking its type and columns
// against the entity catalog.
func (d *Definitions) Seed(entities *entity.Registry, seeder Seeder) error {
	for _, fixture := range d.Fixtures {
		entityType, err := entities.Lookup(fixture.Type)
		if err != nil {
			return fmt.Errorf("definition: fixture %s: %w", fixture.Type, err)
		}

		for index, row := range fixture.Rows {
			for column := range row {
				if !entityType.HasColumn(column) {
					return fmt.Errorf("definition: fixture %s row %d: unknown column %q", fixture.Type, index, column)
				}
			}
		}

		seeder.Seed(entityType.Name, fixture.Rows...)
	}

	return nil
}

// toConfig converts an HCL object value into a widget configuration.
func toConfig(value cty.Value) (widget.Config, error) {
	if value.IsNull() {
		return widget.Config{}, nil
	}

	valueType := value.Type()
	if !valueType.IsObjectType() && !valueType.IsMapType() {
		return nil, fmt.Errorf("expected an object, got %s", valueType.FriendlyName())
	}

	raw, err := ctyjson.Marshal(value, valueType)
	if err != nil {
		return nil, err
	}

	config := widget.Config{}
	if err := json.Unmarshal(raw, &config); err != nil {
		return nil, err
	}
	return config, nil
}

// toRows converts an HCL list of objects into records.
func toRows(value cty.Value) ([]records.Record, error) {
	valueType := value.Type()
	if value.IsNull() || !(valueType.IsTupleType() || valueType.IsListType()) {
		return nil, fmt.Errorf("expected a list of objects, got %s", valueType.FriendlyName())
	}

	raw, err := ctyjson.Marshal(value, valueType)
	if err != nil {
		return nil, err
	}

	var rows []records.Record
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("expected a list of objects: %w", err)
	}
	return rows, nil
}
