package handler

import (
	"context"
	"net/http"
)

// DB is the connection-liveness interface the health check depends on.
type DB interface {
	Ping(ctx context.Context) error
}

// Handler carries the cross-cutting pieces: DB liveness and the allowed
// frontend origin.
type Handler struct {
	db          DB
	frontendURL string
}

// New creates the base Handler.
func New(db DB, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

// CORS restricts browser calls to the configured frontend origin and answers
// preflight requests.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, apikey")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
