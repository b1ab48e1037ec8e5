package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthCheck(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandleReadyCheck(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyCheck(func() bool { return true })(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not ready", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyCheck(func() bool { return false })(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion("v1.2.3")(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.JSONEq(t, `{"version":"v1.2.3"}`, w.Body.String())
}

func TestHandleWithCORS(t *testing.T) {
	h := HandleWithCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("headers are set and the request is forwarded", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusTeapot, w.Code)
		require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight is answered without forwarding", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/", nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestMetricsPathFormatter(t *testing.T) {
	require.Equal(t, "/health", MetricsPathFormatter(http.StatusOK, "/health"))
	require.Equal(t, "", MetricsPathFormatter(http.StatusNotFound, "/whatever"))
	require.Equal(t, "", MetricsPathFormatter(http.StatusMethodNotAllowed, "/health"))
}
