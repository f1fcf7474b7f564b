package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alovak/testcards/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var seenID string
	r := chi.NewRouter()
	r.Use(middleware.NewStructuredLogger(logger))
	r.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		seenID = middleware.RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	t.Run("generates request id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))

		require.Equal(t, http.StatusTeapot, w.Code)
		id := w.Header().Get(middleware.RequestIDHeader)
		require.NotEmpty(t, id)
		require.Equal(t, id, seenID)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "request", entry["msg"])
		require.Equal(t, id, entry["request_id"])
		require.Equal(t, "/teapot", entry["path"])
		require.EqualValues(t, http.StatusTeapot, entry["status"])
		require.EqualValues(t, len("short and stout"), entry["bytes"])
	})

	t.Run("keeps caller request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
		require.Equal(t, "abc-123", seenID)
	})
}
