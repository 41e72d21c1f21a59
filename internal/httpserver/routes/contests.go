package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/contesthub/contesthub/internal/httpserver/deps"
	"github.com/contesthub/contesthub/internal/httpserver/handlers"
)

func init() { Register(registerContests) }

func registerContests(r chi.Router, d deps.Deps) {
	r.Get("/api/contests", handlers.Contests(d))
}
