// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/service"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "Bearer  abc ", want: "abc"},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Basic abc", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		header  string
		want    int
		wantErr error
	}{
		{name: "no token configured", want: http.StatusOK},
		{name: "no token configured ignores header", header: "garbage", want: http.StatusOK},
		{name: "missing header", token: "secret", want: http.StatusUnauthorized, wantErr: ErrEmptyAuthorizationHeader},
		{name: "malformed header", token: "secret", header: "secret", want: http.StatusUnauthorized, wantErr: ErrInvalidAuthorizationHeader},
		{name: "wrong token", token: "secret", header: "Bearer guess", want: http.StatusUnauthorized, wantErr: ErrInvalidToken},
		{name: "valid token", token: "secret", header: "Bearer secret", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{apiToken: tt.token, logger: logger.Nop()}
			req := httptest.NewRequest(http.MethodGet, "/api/identifiers", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rr := httptest.NewRecorder()
			h.auth(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Code)
			if tt.wantErr != nil {
				assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantErr.Error()), rr.Body.String())
			}
		})
	}
}

// ── trace id ─────────────────────────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	var seen *http.Request
	mw := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r
		logger.FromRequest(r).Info().Msg("inside")
	}))

	t.Run("reuses caller trace id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "trace-1")

		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)

		assert.Equal(t, "trace-1", rr.Header().Get(traceIDHeader))
		assert.Contains(t, buf.String(), `"trace_id":"trace-1"`)
		assert.NotSame(t, req, seen)
	})

	t.Run("generates uuid", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
		assert.NoError(t, err)
	})
}

// ── logging ──────────────────────────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   []string
	}{
		{name: "ok", status: http.StatusOK, body: "OK", want: []string{`"level":"info"`, `"status":200`, `"size":2`, `"method":"GET"`, `"uri":"/api/identifiers"`}},
		{name: "client error", status: http.StatusNotFound, want: []string{`"level":"info"`, `"status":404`}},
		{name: "server error", status: http.StatusBadGateway, want: []string{`"level":"warn"`, `"status":502`}},
		{name: "nothing written", want: []string{`"status":200`, `"size":0`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}
			mw := h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/identifiers", nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			mw.ServeHTTP(httptest.NewRecorder(), req)

			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

// ── response writer ──────────────────────────────────────────────────────────

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}
	assert.Equal(t, http.StatusOK, w.statusCode())

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusTeapot)
	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusCreated, w.statusCode())
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rr.Body.String())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, _ = w.Write([]byte("x"))

	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusOK, w.status)
}

// ── method check ─────────────────────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/items", okHandler)
	router.Post("/items", okHandler)
	router.Delete("/items/{id}", okHandler)
	router.Route("/nested", func(r chi.Router) {
		r.Get("/{id}/status", okHandler)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		path   string
		want   int
		allow  string
	}{
		{method: http.MethodGet, path: "/items", want: http.StatusOK},
		{method: http.MethodPut, path: "/items", want: http.StatusMethodNotAllowed, allow: "GET, POST"},
		{method: http.MethodGet, path: "/items/42", want: http.StatusMethodNotAllowed, allow: "DELETE"},
		{method: http.MethodGet, path: "/nested/7/status", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, rr.Code)
			assert.Equal(t, tt.allow, rr.Header().Get("Allow"))
		})
	}
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("rotate identifier: %w", service.ErrKeriaConnectionBroken), http.StatusServiceUnavailable},
		// an offline failure wins over the transport error it wraps
		{fmt.Errorf("%w: %w", service.ErrKeriaConnectionBroken, adapter.ErrNotFound), http.StatusServiceUnavailable},
		{fmt.Errorf("%w: empty name", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{service.ErrInvalidThreshold, http.StatusBadRequest},
		{service.ErrOnlyAllowGroupInitiator, http.StatusForbidden},
		{service.ErrIdentifierIsPending, http.StatusConflict},
		{fmt.Errorf("%w: 1.2.0.3:0:Alice", service.ErrGroupQueuedForOtherMember), http.StatusConflict},
		{service.ErrGroupInceptionMismatch, http.StatusUnprocessableEntity},
		{service.ErrIdentifierNotFound, http.StatusNotFound},
		{service.ErrMissingDataOnKeria, http.StatusBadGateway},
		{adapter.ErrConflict, http.StatusConflict},
		{store.ErrRecordNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
