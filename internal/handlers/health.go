package handlers

import "net/http"

// NewHealthHandler returns a liveness probe handler.
// @Summary Health check
// @Description Reports whether the service is up.
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}
