package api

import (
	"net/http"

	"github.com/calperez/auth-service/internal/api/handlers"
	"github.com/calperez/auth-service/internal/api/middleware"
	"github.com/calperez/auth-service/internal/config"
	"github.com/calperez/auth-service/internal/service"
	"github.com/calperez/auth-service/internal/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func NewRouter(services *service.Services, store session.Store, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	counter := middleware.NewRequestCounter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(counter.Middleware)
	r.Use(middleware.CORS(cfg.AllowedHosts))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, store, cfg)
	healthHandler := handlers.NewHealthHandler(db, redisClient, cfg, counter)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			// Logout must succeed even without a live session, so it
			// stays outside the session middleware.
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Session(store))
				r.Get("/me", authHandler.Me)
			})
		})

		r.Route("/health", func(r chi.Router) {
			r.Get("/", healthHandler.Health)
			r.Get("/detailed", healthHandler.Detailed)
			r.Get("/ready", healthHandler.Ready)
			r.Get("/live", healthHandler.Live)
			r.Get("/metrics", healthHandler.Metrics)
		})
	})

	return r
}
