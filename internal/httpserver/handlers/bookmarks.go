package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/contesthub/contesthub/internal/httpserver/deps"
	"github.com/contesthub/contesthub/internal/logger"
)

type toggleRequest struct {
	Key string `json:"key"`
}

type toggleResponse struct {
	Key        string `json:"key"`
	Bookmarked bool   `json:"bookmarked"`
}

// ToggleBookmark flips the bookmark state of one contest key and persists it
// immediately. The response carries the new membership.
func ToggleBookmark(d deps.Deps) http.HandlerFunc {
	store := storeOrNil(d)

	return func(w http.ResponseWriter, r *http.Request) {
		var req toggleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		req.Key = strings.TrimSpace(req.Key)
		if req.Key == "" {
			http.Error(w, "key is required", http.StatusBadRequest)
			return
		}

		if store == nil {
			http.Error(w, "bookmark storage unavailable", http.StatusServiceUnavailable)
			return
		}

		bookmarked, err := store.ToggleBookmark(r.Context(), req.Key)
		if err != nil {
			d.Logger.Error("failed to toggle bookmark",
				logger.String("key", req.Key),
				logger.Error(err))
			http.Error(w, "failed to toggle bookmark", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toggleResponse{
			Key:        req.Key,
			Bookmarked: bookmarked,
		})
	}
}
