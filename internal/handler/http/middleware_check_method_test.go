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

func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/api/sessions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/api/sessions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Get("/api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
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
		{name: "registered POST", method: http.MethodPost, path: "/api/sessions", expectedStatus: http.StatusOK},
		{name: "registered DELETE", method: http.MethodDelete, path: "/api/sessions", expectedStatus: http.StatusNoContent},
		{name: "registered parameterised GET", method: http.MethodGet, path: "/api/users/7", expectedStatus: http.StatusOK},
		{name: "unregistered GET on static route", method: http.MethodGet, path: "/api/sessions", expectedStatus: http.StatusNotFound},
		{name: "unregistered PUT on static route", method: http.MethodPut, path: "/api/sessions", expectedStatus: http.StatusNotFound},
		{name: "unregistered method on parameterised route", method: http.MethodPost, path: "/api/users/7", expectedStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", expectedStatus: http.StatusNotFound},
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
