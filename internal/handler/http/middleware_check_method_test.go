// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a chi.Mux shaped like the service's router without
// needing services or a logger.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/health_check", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("subscribed"))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "GET /health_check registered", method: http.MethodGet, path: "/health_check", expectedStatus: http.StatusOK},
		{name: "POST /subscriptions registered", method: http.MethodPost, path: "/subscriptions", expectedStatus: http.StatusOK},
		{name: "POST /health_check not registered", method: http.MethodPost, path: "/health_check", expectedStatus: http.StatusNotFound},
		{name: "GET /subscriptions not registered", method: http.MethodGet, path: "/subscriptions", expectedStatus: http.StatusNotFound},
		{name: "DELETE /subscriptions not registered", method: http.MethodDelete, path: "/subscriptions", expectedStatus: http.StatusNotFound},
		{name: "HEAD /health_check not registered", method: http.MethodHead, path: "/health_check", expectedStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/unsubscribe", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	rr := httptest.NewRecorder()
	buildRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/subscriptions", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "subscribed", rr.Body.String())
}

func TestCheckHTTPMethod_DirectCall(t *testing.T) {
	router := buildRouter()
	handler := CheckHTTPMethod(router)

	t.Run("registered method is forwarded", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/health_check", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unregistered method is hidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPut, "/health_check", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
