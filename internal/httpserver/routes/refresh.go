package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/contesthub/contesthub/internal/httpserver/deps"
	"github.com/contesthub/contesthub/internal/httpserver/handlers"
)

func init() { Register(registerRefresh) }

func registerRefresh(r chi.Router, d deps.Deps) {
	r.Post("/api/refresh", handlers.Refresh(d))
}
