// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package project

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
	router.Get("/", handler.listProjects)
	router.Get("/{id}", handler.getProject)

	// Admin only
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAuth)

		admin.Post("/", handler.createProject)
		admin.Put("/{id}", handler.updateProject)
		admin.Delete("/{id}", handler.deleteProject)
	})

	return router
}

func (handler *Handler) listProjects(writer http.ResponseWriter, request *http.Request) {
	category := request.URL.Query().Get("category")

	projects, err := handler.service.ListProjects(request.Context(), category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, projects)
}

func (handler *Handler) getProject(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	p, err := handler.service.GetProject(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, p)
}

func (handler *Handler) createProject(writer http.ResponseWriter, request *http.Request) {
	var input Project
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateProject(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

func (handler *Handler) updateProject(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Project
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateProject(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

func (handler *Handler) deleteProject(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteProject(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
