package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chris-regnier/moodmemo/internal/httpserver/deps"
)

type (
	Registrar  func(r chi.Router, d deps.Deps)
	Middleware = func(http.Handler) http.Handler
)

type registration struct {
	reg Registrar
	mws []Middleware
}

var registry []registration

// Register a registrar with optional per-route middlewares.
func Register(reg Registrar, mws ...Middleware) {
	registry = append(registry, registration{reg: reg, mws: mws})
}

// RegisterAll is called once from server.New.
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, e := range registry {
		if len(e.mws) == 0 {
			e.reg(r, d)
			continue
		}
		e.reg(r.With(e.mws...), d)
	}
}
