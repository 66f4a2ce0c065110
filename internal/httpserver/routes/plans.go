package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/dayweave/planner/internal/httpserver/deps"
	"github.com/dayweave/planner/internal/httpserver/handlers"
	"github.com/dayweave/planner/internal/httpserver/mw"
)

func init() { Register(registerPlans) }

func registerPlans(r chi.Router, d deps.Deps) {
	r.Route("/api/plans", func(r chi.Router) {
		r.Use(mw.Auth(d.JWTSecret, d.Logger))
		r.Use(mw.RateLimit(mw.RateLimitConfig{
			Burst:        d.RateLimitBurst,
			RefillPerMin: d.RateLimitPerMin,
			TrustProxy:   d.TrustProxy,
		}))

		r.Post("/", handlers.CreatePlan(d))
		r.Get("/{planID}", handlers.GetPlan(d))
		r.Delete("/{planID}/activities/{activityID}", handlers.DeleteActivity(d))
		r.Post("/{planID}/activities", handlers.InsertActivities(d))
		r.Post("/{planID}/reorder", handlers.ReorderEvents(d))
	})
}
