package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/dayweave/planner/internal/httpserver/deps"
	"github.com/dayweave/planner/internal/httpserver/handlers"
	"github.com/dayweave/planner/internal/httpserver/mw"
)

func init() { Register(registerCheckpoints) }

func registerCheckpoints(r chi.Router, d deps.Deps) {
	r.Route("/api/checkpoints", func(r chi.Router) {
		r.Use(mw.Auth(d.JWTSecret, d.Logger))

		r.Post("/", handlers.SaveCheckpoint(d))
		r.Post("/claim", handlers.ClaimCheckpoint(d))
	})
}
