// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package profile

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
	router.Get("/", handler.getProfile)
	router.Get("/{section}", handler.listSection)

	// Admin only
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAuth)

		admin.Post("/{section}", handler.createEntry)
		admin.Put("/{section}/{id}", handler.updateEntry)
		admin.Delete("/{section}/{id}", handler.deleteEntry)
	})

	return router
}

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.GetProfile(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

func (handler *Handler) listSection(writer http.ResponseWriter, request *http.Request) {
	section := Section(chi.URLParam(request, "section"))

	entries, err := handler.service.ListSection(request.Context(), section)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entries)
}

func (handler *Handler) createEntry(writer http.ResponseWriter, request *http.Request) {
	section := Section(chi.URLParam(request, "section"))

	var input Entry
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateEntry(request.Context(), section, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

func (handler *Handler) updateEntry(writer http.ResponseWriter, request *http.Request) {
	section := Section(chi.URLParam(request, "section"))
	id := requestutil.ID(request, "id")

	var input Entry
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateEntry(request.Context(), section, id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

func (handler *Handler) deleteEntry(writer http.ResponseWriter, request *http.Request) {
	section := Section(chi.URLParam(request, "section"))
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteEntry(request.Context(), section, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
