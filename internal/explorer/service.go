// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package explorer

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/taibuivan/panelkit/internal/entity"
	"github.com/taibuivan/panelkit/internal/platform/apperr"
	"github.com/taibuivan/panelkit/internal/platform/constants"
	"github.com/taibuivan/panelkit/internal/platform/validate"
	"github.com/taibuivan/panelkit/internal/records"
	"github.com/taibuivan/panelkit/internal/selection"
	"github.com/taibuivan/panelkit/internal/widget"
	"github.com/taibuivan/panelkit/pkg/pagination"
)

// Service configures explorers and handles their selection endpoint.
type Service struct {
	entities   *entity.Registry
	widgets    *widget.Registry
	selections selection.Repository
	records    records.Reader
	logger     *slog.Logger

	mu        sync.RWMutex
	explorers map[string]Options
}

// NewService creates a new explorer Service.
func NewService(
	entities *entity.Registry,
	widgets *widget.Registry,
	selections selection.Repository,
	reader records.Reader,
	logger *slog.Logger,
) *Service {
	return &Service{
		entities:   entities,
		widgets:    widgets,
		selections: selections,
		records:    reader,
		logger:     logger,
		explorers:  make(map[string]Options),
	}
}

// composition is the outcome of one configuration pass.
type composition struct {
	node           *widget.Node
	collectionType *entity.Type
	scope          records.Scope
}

/*
Register declares an explorer and exposes it as a widget class of the same name.

Description: The explorer is configured once with an empty selection so that
wiring mistakes (unknown entity types, unresolvable relationships, unknown pane
classes) fail at startup instead of on the first request.

Returns:
  - error: Validation failures, [*entity.ConfigurationError] or duplicate names
*/
func (service *Service) Register(options Options) error {
	validator := &validate.Validator{}
	validator.Required("name", options.Name).Identifier("name", options.Name)
	validator.OneOf("container_config.region",
		containerDefaults().Merge(options.ContainerConfig).String(widget.KeyRegion),
		constants.RegionWest, constants.RegionEast, constants.RegionNorth, constants.RegionSouth,
	)
	if err := validator.Err(); err != nil {
		return fmt.Errorf("explorer: invalid options %q: %w", options.Name, err)
	}

	if _, err := service.compose(options, selection.State{}); err != nil {
		return fmt.Errorf("explorer %s: %w", options.Name, err)
	}

	if err := service.widgets.Register(options.Name, service.factory(options)); err != nil {
		return err
	}

	service.mu.Lock()
	defer service.mu.Unlock()
	service.explorers[options.Name] = options

	return nil
}

// Names returns the registered explorer names in sorted order.
func (service *Service) Names() []string {
	service.mu.RLock()
	defer service.mu.RUnlock()

	names := make([]string, 0, len(service.explorers))
	for name := range service.explorers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

/*
Configure builds the widget tree of one explorer instance.

Parameters:
  - context: context.Context
  - session: string (owning session subject)
  - name: string (explorer name)

Returns:
  - *widget.Node: Explorer root holding the container and collection panes
  - error: NotFound, [*entity.ConfigurationError] or selection storage failures
*/
func (service *Service) Configure(context context.Context, session, name string) (*widget.Node, error) {
	result, err := service.configure(context, session, name)
	if err != nil {
		return nil, err
	}
	return result.node, nil
}

/*
SelectContainerRecord stores id as the selected container record.

Description: The collection is not reloaded here; its scope is recomputed from
the stored selection on every configuration pass. Selecting the same id twice
leaves the state unchanged.
*/
func (service *Service) SelectContainerRecord(context context.Context, session, name, id string) error {
	validator := &validate.Validator{}
	validator.Required("id", id).MaxLen("id", id, 255)
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.lookup(name); err != nil {
		return err
	}

	key := selection.Key{Session: session, Explorer: name}
	if err := service.selections.Set(context, key, selection.Select(id)); err != nil {
		return err
	}

	service.logger.Info("container_record_selected",
		slog.String("explorer", name),
		slog.String("container_id", id),
	)
	return nil
}

/*
CollectionRecords lists the collection pane's records under the current scope.

Returns:
  - []records.Record: One page of scoped records (empty before any selection)
  - int: Total scoped count
  - error: NotFound, configuration, validation or storage failures
*/
func (service *Service) CollectionRecords(context context.Context, session, name string, page pagination.Params) ([]records.Record, int, error) {
	result, err := service.configure(context, session, name)
	if err != nil {
		return nil, 0, err
	}
	return service.records.List(context, result.collectionType, result.scope, page)
}

func (service *Service) configure(context context.Context, session, name string) (*composition, error) {
	options, err := service.lookup(name)
	if err != nil {
		return nil, err
	}

	state, err := service.selections.Get(context, selection.Key{Session: session, Explorer: name})
	if err != nil {
		return nil, err
	}

	return service.compose(options, state)
}

func (service *Service) lookup(name string) (Options, error) {
	service.mu.RLock()
	defer service.mu.RUnlock()

	options, ok := service.explorers[name]
	if !ok {
		return Options{}, apperr.NotFound("Explorer")
	}
	return options, nil
}

// compose runs one configuration pass against state.
func (service *Service) compose(options Options, state selection.State) (*composition, error) {

	// 1. Merge caller configuration over defaults
	containerConfig := withPlacementDefaults(containerDefaults().Merge(options.ContainerConfig))
	collectionConfig := collectionDefaults().Merge(options.CollectionConfig)

	// 2. Resolve both entity types and the association between them
	containerType, err := service.resolveType(constants.ItemContainer, options.ContainerType, containerConfig)
	if err != nil {
		return nil, err
	}

	collectionType, err := service.resolveType(constants.ItemCollection, options.CollectionType, collectionConfig)
	if err != nil {
		return nil, err
	}

	association, err := entity.Resolve(collectionType, containerType, options.RelationshipName)
	if err != nil {
		return nil, err
	}

	// 3. Scope the collection by the selected container (nil matches nothing)
	var selected any
	if id, ok := state.Selected(); ok {
		selected = id
	}

	scope := records.Scope{association.ForeignKey: selected}.
		Merge(records.Scope(collectionConfig.Map(KeyScope)))
	if err := scope.Validate(collectionType); err != nil {
		return nil, &entity.ConfigurationError{Message: "collection scope: " + err.Error()}
	}

	strongDefaultAttrs := widget.Config{association.ForeignKey: selected}.
		Merge(collectionConfig.Map(KeyStrongDefaultAttrs))

	// 4. Instantiate both panes; a caller-set model is kept
	containerNode, err := service.pane(modelDefault(containerType).Merge(containerConfig).Merge(widget.Config{
		widget.KeyName: constants.ItemContainer,
	}))
	if err != nil {
		return nil, err
	}

	collectionNode, err := service.pane(modelDefault(collectionType).Merge(collectionConfig).Merge(widget.Config{
		widget.KeyName:        constants.ItemCollection,
		widget.KeyRegion:      constants.RegionCenter,
		KeyScope:              scope,
		KeyStrongDefaultAttrs: strongDefaultAttrs,
		KeyLoadInlineData:     false,
	}))
	if err != nil {
		return nil, err
	}

	title := options.Title
	if title == "" {
		title = options.Name
	}

	root := &widget.Node{
		ItemID: options.Name,
		Class:  ClassExplorer,
		Title:  title,
		Layout: "border",
		Config: widget.Config{
			KeyRelationship: association.Name,
			KeyForeignKey:   association.ForeignKey,
			KeySelected:     selected,
		},
		Items: []*widget.Node{containerNode, collectionNode},
	}

	return &composition{node: root, collectionType: collectionType, scope: scope}, nil
}

/*
resolveType picks a pane's entity type: the explicit override, then the
configured model, then the data type reported by the pane's widget class.
*/
func (service *Service) resolveType(side, explicit string, cfg widget.Config) (*entity.Type, error) {
	name := explicit
	if name == "" {
		name = cfg.String(widget.KeyModel)
	}

	if name == "" {
		instance, err := service.instantiate(cfg)
		if err != nil {
			return nil, &entity.ConfigurationError{Message: side + " widget class", Err: err}
		}
		if bound, ok := instance.(widget.DataBound); ok {
			name = bound.DataType()
		}
	}

	if name == "" {
		return nil, &entity.ConfigurationError{Message: "no entity type for the " + side}
	}

	return service.entities.Lookup(name)
}

// modelDefault is the model entry applied under a pane's configuration.
func modelDefault(entityType *entity.Type) widget.Config {
	return widget.Config{widget.KeyModel: entityType.Name}
}

// pane instantiates a pane's widget class and renders its node.
func (service *Service) pane(cfg widget.Config) (*widget.Node, error) {
	instance, err := service.instantiate(cfg)
	if err != nil {
		return nil, &entity.ConfigurationError{Message: cfg.String(widget.KeyName) + " widget class", Err: err}
	}

	node := instance.Node()
	node.ItemID = cfg.String(widget.KeyName)
	node.Region = cfg.String(widget.KeyRegion)
	return node, nil
}

func (service *Service) instantiate(cfg widget.Config) (widget.Widget, error) {
	class, err := service.widgets.Load(cfg.String(widget.KeyClass))
	if err != nil {
		return nil, err
	}
	return class.New(cfg)
}
