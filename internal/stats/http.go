// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/longpd/folio/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{type}/{id}", handler.getStat)
	router.Post("/{type}/{id}", handler.recordView)

	return router
}

func (handler *Handler) getStat(writer http.ResponseWriter, request *http.Request) {
	itemType := chi.URLParam(request, "type")
	itemID := chi.URLParam(request, "id")

	stat, err := handler.service.GetStat(request.Context(), itemType, itemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stat)
}

// recordView counts one public page view. The response carries no body;
// the durable count catches up on the next flush.
func (handler *Handler) recordView(writer http.ResponseWriter, request *http.Request) {
	itemType := chi.URLParam(request, "type")
	itemID := chi.URLParam(request, "id")

	if err := handler.service.Increment(request.Context(), itemType, itemID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
