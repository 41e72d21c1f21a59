package handlers

import (
	"net/http"

	"github.com/contesthub/contesthub/internal/httpserver/deps"
	"github.com/contesthub/contesthub/internal/logger"
)

// Refresh triggers an immediate refresh cycle without waiting for the tick
func Refresh(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case d.RefreshTrigger <- struct{}{}:
			d.Logger.Info("manual refresh triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte("refresh triggered\n"))
		default:
			// The trigger channel holds at most one pending request; a full
			// channel means a refresh is already queued.
			d.Logger.Warn("refresh already queued",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("refresh already queued, please wait\n"))
		}
	}
}
