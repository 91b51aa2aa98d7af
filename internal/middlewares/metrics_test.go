package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("RecordsRoutePatternAndStatus", func(t *testing.T) {
		mockMetrics := NewMockHTTPMetrics(ctrl)
		mockMetrics.EXPECT().
			ObserveHTTPRequest(http.MethodGet, "/v1/user/{email}", "404", gomock.Any())

		r := chi.NewRouter()
		r.Use(MetricsMiddleware(mockMetrics))
		r.Get("/v1/user/{email}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/user/someone@example.com", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("FallsBackToRawPath", func(t *testing.T) {
		mockMetrics := NewMockHTTPMetrics(ctrl)
		mockMetrics.EXPECT().
			ObserveHTTPRequest(http.MethodGet, "/healthz", "200", gomock.Any())

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		handler := MetricsMiddleware(mockMetrics)(next)

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
