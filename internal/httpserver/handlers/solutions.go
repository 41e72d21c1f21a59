package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/contesthub/contesthub/internal/httpserver/deps"
	"github.com/contesthub/contesthub/internal/logger"
)

type solutionRequest struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type solutionResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// SaveSolution upserts a manually attached solution link for a contest key.
// Manual links take precedence over auto-matched videos when rendering.
func SaveSolution(d deps.Deps) http.HandlerFunc {
	store := storeOrNil(d)

	return func(w http.ResponseWriter, r *http.Request) {
		var req solutionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		req.Key = strings.TrimSpace(req.Key)
		req.URL = strings.TrimSpace(req.URL)
		if req.Key == "" {
			http.Error(w, "key is required", http.StatusBadRequest)
			return
		}
		if !validSolutionURL(req.URL) {
			http.Error(w, "url must be a valid http(s) URL", http.StatusBadRequest)
			return
		}

		if store == nil {
			http.Error(w, "solution storage unavailable", http.StatusServiceUnavailable)
			return
		}

		if err := store.SaveSolution(r.Context(), req.Key, req.URL); err != nil {
			d.Logger.Error("failed to save solution",
				logger.String("key", req.Key),
				logger.Error(err))
			http.Error(w, "failed to save solution", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(solutionResponse{
			Key: req.Key,
			URL: req.URL,
		})
	}
}

func validSolutionURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
