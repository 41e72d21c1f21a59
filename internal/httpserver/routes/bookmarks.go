package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/contesthub/contesthub/internal/httpserver/deps"
	"github.com/contesthub/contesthub/internal/httpserver/handlers"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Get("/api/bookmarks", handlers.Bookmarks(d))
	r.Post("/api/bookmarks/toggle", handlers.ToggleBookmark(d))
}
