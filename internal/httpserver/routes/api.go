package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chris-regnier/moodmemo/internal/httpserver/deps"
	"github.com/chris-regnier/moodmemo/internal/httpserver/handlers"
)

const defaultRequestTimeout = 5 * time.Second

func init() { Register(registerAPI) }

func registerAPI(r chi.Router, d deps.Deps) {
	timeout := d.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(timeout))

			r.Get("/entries", handlers.ListEntries(d))
			r.Post("/entries", handlers.CreateEntry(d))
			r.Get("/entries/{id}", handlers.GetEntry(d))
			r.Put("/entries/{id}", handlers.UpdateEntry(d))
			r.Delete("/entries/{id}", handlers.DeleteEntry(d))

			r.Get("/calendar/{year}/{month}", handlers.Calendar(d))
			r.Get("/chart", handlers.Chart(d))
			r.Get("/moods", handlers.Moods(d))
		})

		// Long-lived stream; no request timeout.
		r.Get("/events", handlers.Events(d))
	})
}
