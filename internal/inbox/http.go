// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package inbox

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/longpd/folio/internal/platform/middleware"
	requestutil "github.com/longpd/folio/internal/platform/request"
	"github.com/longpd/folio/internal/platform/respond"
	"github.com/longpd/folio/pkg/convert"
	"github.com/longpd/folio/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public contact form
	router.Post("/", handler.createMessage)

	// Admin only
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAuth)

		admin.Get("/", handler.listMessages)
		admin.Patch("/{id}/read", handler.markRead)
		admin.Post("/read-all", handler.markAllRead)
		admin.Delete("/{id}", handler.deleteMessage)
	})

	return router
}

func (handler *Handler) createMessage(writer http.ResponseWriter, request *http.Request) {
	var input Message
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateMessage(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

func (handler *Handler) listMessages(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	unreadOnly := convert.ToBool(request.URL.Query().Get("unread"))

	messages, meta, err := handler.service.ListMessages(request.Context(), params, unreadOnly)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, messages, meta)
}

func (handler *Handler) markRead(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.MarkRead(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

func (handler *Handler) markAllRead(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.MarkAllRead(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

func (handler *Handler) deleteMessage(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteMessage(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
