package handler

import (
	"net/http"

	"github.com/msomdec/userstore/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. A nil limiter
// leaves the login endpoint unthrottled.
func RegisterRoutes(mux *http.ServeMux, users *service.UserService, limiter *LoginLimiter) {
	h := NewUserHandler(users)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/login", limiter.Limit(h.HandleLogin))
	mux.HandleFunc("GET /api/users", h.HandleList)
	mux.HandleFunc("POST /api/users", h.HandleCreate)
	mux.HandleFunc("GET /api/users/{id}", h.HandleGet)
	mux.HandleFunc("PUT /api/users/{id}", h.HandleUpdate)
	mux.HandleFunc("DELETE /api/users/{id}", h.HandleDelete)
}
