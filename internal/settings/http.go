// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/longpd/folio/internal/platform/middleware"
	requestutil "github.com/longpd/folio/internal/platform/request"
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

	// Public
	router.Get("/", handler.listSettings)
	router.Get("/{key}", handler.getSetting)

	// Admin only
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAuth)

		admin.Put("/{key}", handler.setSetting)
		admin.Delete("/{key}", handler.deleteSetting)
	})

	return router
}

func (handler *Handler) listSettings(writer http.ResponseWriter, request *http.Request) {
	list, err := handler.service.ListSettings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, list)
}

func (handler *Handler) getSetting(writer http.ResponseWriter, request *http.Request) {
	key := chi.URLParam(request, "key")

	setting, err := handler.service.GetSetting(request.Context(), key)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, setting)
}

func (handler *Handler) setSetting(writer http.ResponseWriter, request *http.Request) {
	var input Setting
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The path segment is authoritative for the key being written.
	input.Key = chi.URLParam(request, "key")

	if err := handler.service.SetSetting(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

func (handler *Handler) deleteSetting(writer http.ResponseWriter, request *http.Request) {
	key := chi.URLParam(request, "key")

	if err := handler.service.DeleteSetting(request.Context(), key); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
