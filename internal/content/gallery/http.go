// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/longpd/folio/internal/platform/middleware"
	requestutil "github.com/longpd/folio/internal/platform/request"
	"github.com/longpd/folio/internal/platform/respond"
	"github.com/longpd/folio/pkg/convert"
	"github.com/longpd/folio/pkg/imageurl"
)

const defaultMasonryColumns = 3

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listImages)
	router.Get("/by-year", handler.groupedByYear)
	router.Get("/masonry", handler.masonry)

	// Admin only
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAuth)

		admin.Post("/", handler.createImage)
		admin.Put("/{id}", handler.updateImage)
		admin.Delete("/{id}", handler.deleteImage)
	})

	return router
}

func (handler *Handler) listImages(writer http.ResponseWriter, request *http.Request) {
	collection := request.URL.Query().Get("collection")
	width := convert.ToIntD(request.URL.Query().Get("width"), 0)

	images, err := handler.service.ListImages(request.Context(), collection)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, withRequestedWidth(images, width))
}

func (handler *Handler) groupedByYear(writer http.ResponseWriter, request *http.Request) {
	collection := request.URL.Query().Get("collection")

	groups, years, undated, err := handler.service.GroupByYear(request.Context(), collection)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"years":   years,
		"groups":  groups,
		"undated": undated,
	})
}

func (handler *Handler) masonry(writer http.ResponseWriter, request *http.Request) {
	collection := request.URL.Query().Get("collection")
	width := convert.ToIntD(request.URL.Query().Get("width"), 0)

	columns := convert.ToIntD(request.URL.Query().Get("columns"), defaultMasonryColumns)
	if columns < 1 || columns > 12 {
		columns = defaultMasonryColumns
	}

	layout, err := handler.service.Masonry(request.Context(), collection, columns)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	for i := range layout {
		layout[i] = withRequestedWidth(layout[i], width)
	}

	respond.OK(writer, map[string]any{"columns": layout})
}

// withRequestedWidth rewrites delivery URLs for the requested display width.
// A zero width serves the stored URLs unchanged.
func withRequestedWidth(images []Image, width int) []Image {
	if width <= 0 {
		return images
	}

	for i := range images {
		images[i].URL = imageurl.Transform(images[i].URL, imageurl.Options{Width: width})
	}
	return images
}

func (handler *Handler) createImage(writer http.ResponseWriter, request *http.Request) {
	var input Image
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateImage(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

func (handler *Handler) updateImage(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Image
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateImage(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

func (handler *Handler) deleteImage(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteImage(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
