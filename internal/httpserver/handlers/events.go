package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris-regnier/moodmemo/internal/httpserver/deps"
	"github.com/chris-regnier/moodmemo/internal/logger"
)

// Events serves GET /api/events as a server-sent event stream of feed
// changes, one "event: <type>" frame per change, until the client leaves.
func Events(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Feed == nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "change feed is not enabled"})
			return
		}
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "streaming unsupported"})
			return
		}
		events, err := d.Feed.Subscribe(r.Context())
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		for ev := range events {
			data, err := json.Marshal(ev)
			if err != nil {
				d.Logger.Warn("dropping unencodable event", logger.Error(err))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
