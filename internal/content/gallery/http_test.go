// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package gallery_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpd/folio/internal/content/gallery"
)

func TestListImages_WidthParamRewritesDeliveryURLs(t *testing.T) {
	rows := []gallery.Row{
		{ID: "g1", URL: "https://res.cloudinary.com/folio/image/upload/v1741000000/gallery/hero.jpg", Collection: "home"},
		{ID: "g2", URL: "https://cdn.folio.dev/plain.jpg", Collection: "home"},
	}
	handler := gallery.NewHandler(gallery.NewService(nil, rows, discard))

	request := httptest.NewRequest(http.MethodGet, "/?width=400", nil)
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []gallery.Image `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)

	byID := map[string]string{}
	for _, img := range envelope.Data {
		byID[img.ID] = img.URL
	}

	assert.Equal(t, "https://res.cloudinary.com/folio/image/upload/f_auto,q_auto,w_400/v1741000000/gallery/hero.jpg", byID["g1"])
	// Non-Cloudinary URLs pass through untouched.
	assert.Equal(t, "https://cdn.folio.dev/plain.jpg", byID["g2"])
}

func TestListImages_NoWidthParamServesStoredURLs(t *testing.T) {
	rows := []gallery.Row{
		{ID: "g1", URL: "https://res.cloudinary.com/folio/image/upload/v1741000000/gallery/hero.jpg", Collection: "home"},
	}
	handler := gallery.NewHandler(gallery.NewService(nil, rows, discard))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []gallery.Image `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, rows[0].URL, envelope.Data[0].URL)
}
