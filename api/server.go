/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the dashboard frontend

ROUTE GROUPS:
  /api/users/*          Roster management
  /api/goals/*          Monthly goals and distribution
  /api/progress/*       Store-wide and per-user progress logs
  /api/sales/*          Sale log
  /api/messages/*       Manager notice board
  /api/commissions/*    Commission statements
  /api/dashboard/*      Summary, ranking, daily pace
  /api/reports/*        Monthly report and coaching plan
  /api/seed             Demo data (dev only)

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Roster routes
		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Post("/", h.CreateUser)
			r.Get("/{id}", h.GetUser)
			r.Put("/{id}", h.UpdateUser)
			r.Delete("/{id}", h.DeleteUser)
		})

		// Goal routes
		r.Route("/goals", func(r chi.Router) {
			r.Post("/preview", h.PreviewGoal)
			r.Put("/{month}", h.CommitGoal)
			r.Get("/{month}", h.GetGoal)
			r.Get("/{month}/users/{id}", h.GetUserGoal)
		})

		// Progress routes
		r.Route("/progress", func(r chi.Router) {
			r.Route("/store", func(r chi.Router) {
				r.Get("/", h.ListStoreProgress)
				r.Post("/", h.CreateStoreProgress)
				r.Put("/{id}", h.UpdateStoreProgress)
				r.Delete("/{id}", h.DeleteStoreProgress)
			})
			r.Route("/individual", func(r chi.Router) {
				r.Get("/", h.ListIndividualProgress)
				r.Post("/", h.CreateIndividualProgress)
				r.Put("/{id}", h.UpdateIndividualProgress)
				r.Delete("/{id}", h.DeleteIndividualProgress)
			})
		})

		// Sale routes
		r.Route("/sales", func(r chi.Router) {
			r.Get("/", h.ListSales)
			r.Post("/", h.CreateSale)
			r.Delete("/{id}", h.DeleteSale)
		})

		// Message routes
		r.Route("/messages", func(r chi.Router) {
			r.Get("/", h.ListMessages)
			r.Post("/", h.CreateMessage)
			r.Delete("/{id}", h.DeleteMessage)
		})

		// Commission routes
		r.Route("/commissions", func(r chi.Router) {
			r.Get("/{month}", h.TeamCommissions)
			r.Get("/{month}/manager", h.ManagerStatement)
			r.Get("/{month}/users/{id}", h.UserStatement)
		})

		// Dashboard routes
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/{month}/summary", h.StoreSummary)
			r.Get("/{month}/ranking", h.MonthlyRanking)
			r.Get("/{month}/pace", h.DailyPace)
		})

		// Report routes
		r.Route("/reports", func(r chi.Router) {
			r.Get("/{month}", h.MonthlyReport)
			r.Post("/{month}/coach", h.CoachPlan)
		})

		// Demo data
		r.Post("/seed", h.SeedDemo)
	})

	return r
}
