// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"github.com/taibuivan/panelkit/internal/entity"
	"github.com/taibuivan/panelkit/internal/platform/apperr"
	"github.com/taibuivan/panelkit/internal/platform/constants"
	"github.com/taibuivan/panelkit/internal/platform/validate"
	"github.com/taibuivan/panelkit/internal/widget"
)

// Service composes workspaces and runs the tab lifecycle endpoints.
type Service struct {
	widgets *widget.Registry
	repo    Repository
	logger  *slog.Logger

	mu         sync.RWMutex
	workspaces map[string]Options
}

// NewService creates a new workspace Service.
func NewService(widgets *widget.Registry, repo Repository, logger *slog.Logger) *Service {
	return &Service{
		widgets:    widgets,
		repo:       repo,
		logger:     logger,
		workspaces: make(map[string]Options),
	}
}

// Register declares a workspace.
func (service *Service) Register(options Options) error {
	validator := &validate.Validator{}
	validator.Required("name", options.Name).Identifier("name", options.Name)
	if err := validator.Err(); err != nil {
		return fmt.Errorf("workspace: invalid name %q: %w", options.Name, err)
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	if _, exists := service.workspaces[options.Name]; exists {
		return fmt.Errorf("workspace: %s registered twice", options.Name)
	}
	service.workspaces[options.Name] = options

	return nil
}

// Names returns the registered workspace names in sorted order.
func (service *Service) Names() []string {
	service.mu.RLock()
	defer service.mu.RUnlock()

	names := make([]string, 0, len(service.workspaces))
	for name := range service.workspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

/*
Configure builds the workspace tree: the dashboard followed by the stored tabs
in stored order, each wrapped by [ExtendItem].

Returns:
  - *widget.Node: Workspace root
  - error: NotFound, [*entity.ConfigurationError] for a stored type that is no
    longer registered, or storage failures
*/
func (service *Service) Configure(context context.Context, instance Instance) (*widget.Node, error) {
	options, err := service.lookup(instance.Workspace)
	if err != nil {
		return nil, err
	}

	tabs, _, err := service.repo.Load(context, instance.Key())
	if err != nil {
		return nil, err
	}

	arena := widget.NewArena()

	dashboard, err := service.dashboard(arena, options)
	if err != nil {
		return nil, err
	}

	raw := []*widget.Node{dashboard}
	for _, tab := range tabs {
		content, err := service.instantiate(arena, tab)
		if err != nil {
			return nil, &entity.ConfigurationError{Message: "stored tab " + tab.Name, Err: err}
		}
		raw = append(raw, content)
	}

	items := make([]*widget.Node, len(raw))
	for index, item := range raw {
		items[index] = ExtendItem(arena, item, index)
	}

	title := options.Title
	if title == "" {
		title = options.Name
	}

	return &widget.Node{
		ItemID: options.Name,
		Class:  ClassWorkspace,
		Title:  title,
		Layout: "tab",
		Config: widget.Config{KeyAlwaysReloadFirstTab: options.AlwaysReloadFirstTab},
		Items:  items,
	}, nil
}

/*
ExtendItem wraps a tab's content node for the tab panel.

Description: The title is read from the instance registered in arena under the
content's item id. Only position 0 is populated eagerly; every other tab is
closable and starts with no items, to be filled on activation.
*/
func ExtendItem(arena *widget.Arena, raw *widget.Node, index int) *widget.Node {
	items := []*widget.Node{}
	if index == 0 {
		items = append(items, raw)
	}

	return &widget.Node{
		ItemID:   raw.ItemID,
		Title:    arena.Title(raw.ItemID),
		Layout:   "fit",
		Closable: index > 0,
		Items:    items,
	}
}

/*
LoadComponent delivers a component into the tab called name.

Description: typeName is resolved through the widget registry and instantiated
with config over {name, type} to read its title. The tab is appended when the
store is empty or its ordinal is past the last stored tab; otherwise the stored
tab of the same name is replaced in place. A name that falls inside the stored
range but matches no tab is inserted at its ordinal position.

Returns:
  - *widget.Node: Content node of the delivered tab
  - error: Validation, [*widget.UnknownComponentError], [ErrStaleTabs] or storage failures
*/
func (service *Service) LoadComponent(context context.Context, instance Instance, name, typeName string, config widget.Config) (*widget.Node, error) {
	if _, err := service.lookup(instance.Workspace); err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	validator.Required("name", name).
		MaxLen("name", name, 64).
		Custom("name", name != "" && !IsTabName(name), "must be "+constants.TabNamePrefix+" followed by a number").
		Required("component", typeName)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Unknown types fail before the store is read, leaving it untouched
	descriptor := Descriptor{
		Name:          name,
		ComponentType: typeName,
		Config:        config.Clone(),
		Closable:      true,
	}

	arena := widget.NewArena()
	content, err := service.instantiate(arena, descriptor)
	if err != nil {
		return nil, err
	}
	descriptor.Title = arena.Title(name)

	tabs, version, err := service.repo.Load(context, instance.Key())
	if err != nil {
		return nil, err
	}

	tabs, action := place(tabs, descriptor)

	if err := service.repo.Save(context, instance.Key(), tabs, version); err != nil {
		return nil, err
	}

	service.logger.Info(action,
		slog.String("workspace", instance.Workspace),
		slog.String("tab", name),
		slog.String("component", typeName),
	)
	return content, nil
}

/*
TabContent renders the stored content of one tab without changing the store.
It serves the lazy fetch of a tab that was configured with no items.
*/
func (service *Service) TabContent(context context.Context, instance Instance, name string) (*widget.Node, error) {
	options, err := service.lookup(instance.Workspace)
	if err != nil {
		return nil, err
	}

	arena := widget.NewArena()
	if name == constants.ItemDashboard {
		return service.dashboard(arena, options)
	}

	tabs, _, err := service.repo.Load(context, instance.Key())
	if err != nil {
		return nil, err
	}

	index := slices.IndexFunc(tabs, func(tab Descriptor) bool { return tab.Name == name })
	if index < 0 {
		return nil, apperr.NotFound("Tab")
	}

	content, err := service.instantiate(arena, tabs[index])
	if err != nil {
		return nil, &entity.ConfigurationError{Message: "stored tab " + name, Err: err}
	}
	return content, nil
}

// RemoveAllTabs clears the stored tabs. The dashboard remains.
func (service *Service) RemoveAllTabs(context context.Context, instance Instance) error {
	if _, err := service.lookup(instance.Workspace); err != nil {
		return err
	}

	_, version, err := service.repo.Load(context, instance.Key())
	if err != nil {
		return err
	}

	if err := service.repo.Save(context, instance.Key(), []Descriptor{}, version); err != nil {
		return err
	}

	service.logger.Info("tabs_cleared", slog.String("workspace", instance.Workspace))
	return nil
}

// RemoveTab removes the tab called name. Removing an absent tab does nothing.
func (service *Service) RemoveTab(context context.Context, instance Instance, name string) error {
	if _, err := service.lookup(instance.Workspace); err != nil {
		return err
	}

	tabs, version, err := service.repo.Load(context, instance.Key())
	if err != nil {
		return err
	}

	index := slices.IndexFunc(tabs, func(tab Descriptor) bool { return tab.Name == name })
	if index < 0 {
		return nil
	}

	if err := service.repo.Save(context, instance.Key(), slices.Delete(tabs, index, index+1), version); err != nil {
		return err
	}

	service.logger.Info("tab_removed",
		slog.String("workspace", instance.Workspace),
		slog.String("tab", name),
	)
	return nil
}

/*
place returns tabs with descriptor appended, replaced in place or inserted by
ordinal, and the log message naming what happened.
*/
func place(tabs []Descriptor, descriptor Descriptor) ([]Descriptor, string) {
	placed := slices.Clone(tabs)
	ordinal := Ordinal(descriptor.Name)

	if len(placed) == 0 || ordinal > Ordinal(placed[len(placed)-1].Name) {
		return append(placed, descriptor), "tab_appended"
	}

	if index := slices.IndexFunc(placed, func(tab Descriptor) bool { return tab.Name == descriptor.Name }); index >= 0 {
		placed[index] = descriptor
		return placed, "tab_replaced"
	}

	index := slices.IndexFunc(placed, func(tab Descriptor) bool { return Ordinal(tab.Name) > ordinal })
	if index < 0 {
		index = len(placed)
	}
	return slices.Insert(placed, index, descriptor), "tab_inserted"
}

func (service *Service) lookup(name string) (Options, error) {
	service.mu.RLock()
	defer service.mu.RUnlock()

	options, ok := service.workspaces[name]
	if !ok {
		return Options{}, apperr.NotFound("Workspace")
	}
	return options, nil
}

// dashboard instantiates the fixed first tab into arena.
func (service *Service) dashboard(arena *widget.Arena, options Options) (*widget.Node, error) {
	class, err := service.widgets.Load(widget.ClassPanel)
	if err != nil {
		return nil, &entity.ConfigurationError{Message: "dashboard panel", Err: err}
	}

	cfg := options.dashboardConfig()
	instance, err := class.New(cfg)
	if err != nil {
		return nil, &entity.ConfigurationError{Message: "dashboard panel", Err: err}
	}

	arena.Put(constants.ItemDashboard, instance)

	node := instance.Node()
	node.ItemID = constants.ItemDashboard
	return node, nil
}

// instantiate builds a tab's widget into arena and renders its content node.
// The tab's name and type override same-named keys in its config.
func (service *Service) instantiate(arena *widget.Arena, tab Descriptor) (*widget.Node, error) {
	class, err := service.widgets.Load(tab.ComponentType)
	if err != nil {
		return nil, err
	}

	instance, err := class.New(tab.Config.Merge(widget.Config{
		widget.KeyName: tab.Name,
		widget.KeyType: tab.ComponentType,
	}))
	if err != nil {
		return nil, err
	}

	arena.Put(tab.Name, instance)

	node := instance.Node()
	node.ItemID = tab.Name
	return node, nil
}
