package api

import (
	"net/http"

	"github.com/dailydiet/daily-diet-api/internal/api/handlers"
	"github.com/dailydiet/daily-diet-api/internal/api/middleware"
	"github.com/dailydiet/daily-diet-api/internal/config"
	"github.com/dailydiet/daily-diet-api/internal/repository"
	"github.com/dailydiet/daily-diet-api/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, repos *repository.Repositories, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	userHandler := handlers.NewUserHandler(services.Auth, cfg)
	mealHandler := handlers.NewMealHandler(services.Meal)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public session-establishment routes
		r.Post("/users", userHandler.Register)
		r.Post("/sessions", userHandler.Login)

		// Meal routes, guarded by the session resolver
		r.Route("/meals", func(r chi.Router) {
			r.Use(middleware.Session(cfg.SessionCookieName, repos.User))

			r.Post("/", mealHandler.Create)
			r.Get("/", mealHandler.List)
			r.Get("/metrics", mealHandler.Metrics)
			r.Get("/{mealId}", mealHandler.Get)
			r.Put("/{mealId}", mealHandler.Update)
		})
	})

	return r
}
