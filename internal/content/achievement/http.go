// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package achievement

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
	router.Get("/", handler.listAchievements)
	router.Get("/by-year", handler.groupedByYear)
	router.Get("/{id}", handler.getAchievement)

	// Admin only
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAuth)

		admin.Post("/", handler.createAchievement)
		admin.Put("/{id}", handler.updateAchievement)
		admin.Delete("/{id}", handler.deleteAchievement)
	})

	return router
}

func (handler *Handler) listAchievements(writer http.ResponseWriter, request *http.Request) {
	typeFilter := request.URL.Query().Get("type")

	achievements, err := handler.service.ListAchievements(request.Context(), typeFilter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, achievements)
}

// groupedByYear serves the "section per year" layout: a descending year
// index plus the per-year buckets.
func (handler *Handler) groupedByYear(writer http.ResponseWriter, request *http.Request) {
	groups, years, err := handler.service.GroupByYear(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"years":  years,
		"groups": groups,
	})
}

func (handler *Handler) getAchievement(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	a, err := handler.service.GetAchievement(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, a)
}

func (handler *Handler) createAchievement(writer http.ResponseWriter, request *http.Request) {
	var input Achievement
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateAchievement(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

func (handler *Handler) updateAchievement(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Achievement
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateAchievement(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

func (handler *Handler) deleteAchievement(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteAchievement(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
