package handlers

import (
	"net/http"
	"time"

	"github.com/chris-regnier/moodmemo/internal/httpserver/deps"
)

type healthzResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Entries       int     `json:"entries"`
	Version       string  `json:"version,omitempty"`
	Commit        string  `json:"commit,omitempty"`
}

func Healthz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthzResponse{
			Status:        "ok",
			UptimeSeconds: time.Since(d.StartTime).Seconds(),
			Entries:       len(d.Store.GetAll()),
			Version:       d.Version,
			Commit:        d.Commit,
		})
	}
}
