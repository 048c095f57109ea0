// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package workspace

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/panelkit/internal/platform/request"
	"github.com/taibuivan/panelkit/internal/platform/respond"
	"github.com/taibuivan/panelkit/internal/widget"
)

// Handler exposes workspaces over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{workspace}", handler.configure)
	router.Post("/{workspace}/deliver_component", handler.deliverComponent)
	router.Post("/{workspace}/server_remove_all", handler.serverRemoveAll)
	router.Post("/{workspace}/server_remove_tab", handler.serverRemoveTab)
}

// deliverRequest is the parameter bag of deliver_component.
type deliverRequest struct {
	Name      string        `json:"name"`
	Component string        `json:"component"`
	Config    widget.Config `json:"config"`
}

type removeTabRequest struct {
	Name string `json:"name"`
}

// instance resolves the workspace instance owned by the request's session.
func instance(request *http.Request) (Instance, error) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		return Instance{}, err
	}
	return Instance{Session: session, Workspace: requestutil.Param(request, "workspace")}, nil
}

func (handler *Handler) configure(writer http.ResponseWriter, request *http.Request) {
	target, err := instance(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	node, err := handler.service.Configure(request.Context(), target)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, node)
}

// deliverComponent loads a component into a tab, or returns the stored
// content of the tab when no component is given.
func (handler *Handler) deliverComponent(writer http.ResponseWriter, request *http.Request) {
	target, err := instance(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input deliverRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var node *widget.Node
	if input.Component == "" {
		node, err = handler.service.TabContent(request.Context(), target, input.Name)
	} else {
		node, err = handler.service.LoadComponent(request.Context(), target, input.Name, input.Component, input.Config)
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, node)
}

func (handler *Handler) serverRemoveAll(writer http.ResponseWriter, request *http.Request) {
	target, err := instance(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveAllTabs(request.Context(), target); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) serverRemoveTab(writer http.ResponseWriter, request *http.Request) {
	target, err := instance(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input removeTabRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveTab(request.Context(), target, input.Name); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
