package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/calperez/auth-service/internal/api"
	"github.com/calperez/auth-service/internal/config"
	"github.com/calperez/auth-service/internal/repository/postgres"
	"github.com/calperez/auth-service/internal/service"
	"github.com/calperez/auth-service/internal/session"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories and services
	repos := postgres.NewRepositories(db)
	services := service.NewServices(repos)

	// Initialize session store
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = session.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}

	var store session.Store
	if cfg.SessionBackend == config.BackendRedis {
		store = session.NewRedisStore(redisClient, cfg.SessionTTL)
	} else {
		store = session.NewMemoryStore(cfg.SessionTTL)
	}
	defer store.Close()

	// Initialize router
	router := api.NewRouter(services, store, db, redisClient, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s (env=%s, sessions=%s)", cfg.Port, cfg.Environment, cfg.SessionBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
