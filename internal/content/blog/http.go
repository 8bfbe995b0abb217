// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package blog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/longpd/folio/internal/platform/middleware"
	requestutil "github.com/longpd/folio/internal/platform/request"
	"github.com/longpd/folio/internal/platform/respond"
	"github.com/longpd/folio/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves the public blog surface plus the admin mutations.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listPublished)
	router.Get("/{slug}", handler.getBlog)
	router.Get("/{slug}/html", handler.renderHTML)

	// Admin only
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAuth)

		admin.Post("/", handler.createBlog)
		admin.Put("/{id}", handler.updateBlog)
		admin.Delete("/{id}", handler.deleteBlog)
	})

	return router
}

// AdminRoutes serves the draft-inclusive listing for the admin panel.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listAll)

	return router
}

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	handler.list(writer, request, false)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	handler.list(writer, request, true)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request, includeUnpublished bool) {
	tags := query.StringSlice(request.URL.Query().Get("tag"))

	blogs, err := handler.service.ListBlogs(request.Context(), tags, includeUnpublished)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, blogs)
}

func (handler *Handler) getBlog(writer http.ResponseWriter, request *http.Request) {
	slug := chi.URLParam(request, "slug")

	b, err := handler.service.GetBlog(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, b)
}

func (handler *Handler) renderHTML(writer http.ResponseWriter, request *http.Request) {
	slug := chi.URLParam(request, "slug")

	html, err := handler.service.RenderHTML(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"slug": slug, "html": html})
}

func (handler *Handler) createBlog(writer http.ResponseWriter, request *http.Request) {
	var input Blog
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateBlog(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

func (handler *Handler) updateBlog(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Blog
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateBlog(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

func (handler *Handler) deleteBlog(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteBlog(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
