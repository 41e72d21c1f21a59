package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/contesthub/contesthub/internal/httpserver/deps"
	"github.com/contesthub/contesthub/internal/httpserver/handlers"
)

func init() { Register(registerSolutions) }

func registerSolutions(r chi.Router, d deps.Deps) {
	r.Put("/api/solutions", handlers.SaveSolution(d))
}
