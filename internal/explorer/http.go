// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package explorer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/panelkit/internal/platform/request"
	"github.com/taibuivan/panelkit/internal/platform/respond"
	"github.com/taibuivan/panelkit/pkg/convert"
	"github.com/taibuivan/panelkit/pkg/pagination"
)

// Handler exposes explorers over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{explorer}", handler.configure)
	router.Get("/{explorer}/collection", handler.listCollection)
	router.Post("/{explorer}/select_container_record", handler.selectContainerRecord)
}

// selectRequest accepts numeric or string ids.
type selectRequest struct {
	ID any `json:"id"`
}

func (handler *Handler) configure(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	node, err := handler.service.Configure(request.Context(), session, requestutil.Param(request, "explorer"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, node)
}

func (handler *Handler) listCollection(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	rows, total, err := handler.service.CollectionRecords(request.Context(), session, requestutil.Param(request, "explorer"), paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, rows, pagination.NewMeta(paginationParams, total))
}

func (handler *Handler) selectContainerRecord(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input selectRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SelectContainerRecord(request.Context(), session, requestutil.Param(request, "explorer"), convert.ToString(input.ID)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
