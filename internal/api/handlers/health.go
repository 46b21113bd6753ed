package handlers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/calperez/auth-service/internal/api/middleware"
	"github.com/calperez/auth-service/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HealthHandler answers liveness, readiness and dependency-status probes.
// The redis client is nil when no redis is configured; its check is then
// reported as skipped rather than failed.
type HealthHandler struct {
	db         *gorm.DB
	redis      *redis.Client
	cfg        *config.Config
	counter    *middleware.RequestCounter
	startTime  time.Time
	instanceID string
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, counter *middleware.RequestCounter) *HealthHandler {
	return &HealthHandler{
		db:         db,
		redis:      redisClient,
		cfg:        cfg,
		counter:    counter,
		startTime:  time.Now(),
		instanceID: uuid.New().String(),
	}
}

type healthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
}

type serviceStatus struct {
	Status         string  `json:"status"`
	ResponseTimeMS float64 `json:"response_time_ms,omitempty"`
	Error          string  `json:"error,omitempty"`
}

type detailedHealthResponse struct {
	healthResponse
	Services      map[string]serviceStatus `json:"services"`
	UptimeSeconds float64                  `json:"uptime_seconds"`
}

const dependencyTimeout = 2 * time.Second

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Version:     h.cfg.Version,
		Environment: h.cfg.Environment,
	})
}

func (h *HealthHandler) Detailed(w http.ResponseWriter, r *http.Request) {
	services := map[string]serviceStatus{}
	overall := "healthy"

	dbStatus := h.checkDatabase(r.Context())
	services["database"] = dbStatus
	if dbStatus.Status == "unhealthy" {
		overall = "degraded"
	}

	redisStatus := h.checkRedis(r.Context())
	services["redis"] = redisStatus
	if redisStatus.Status == "unhealthy" {
		overall = "degraded"
	}

	writeJSON(w, http.StatusOK, detailedHealthResponse{
		healthResponse: healthResponse{
			Status:      overall,
			Timestamp:   time.Now().UTC(),
			Version:     h.cfg.Version,
			Environment: h.cfg.Environment,
		},
		Services:      services,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if status := h.checkDatabase(r.Context()); status.Status != "healthy" {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

func (h *HealthHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"uptime_seconds":     time.Since(h.startTime).Seconds(),
		"version":            h.cfg.Version,
		"environment":        h.cfg.Environment,
		"instance_id":        h.instanceID,
		"requests_processed": h.counter.Count(),
		"goroutines":         runtime.NumGoroutine(),
		"heap_alloc_bytes":   mem.HeapAlloc,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) serviceStatus {
	ctx, cancel := context.WithTimeout(ctx, dependencyTimeout)
	defer cancel()

	start := time.Now()
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return serviceStatus{Status: "unhealthy", Error: err.Error()}
	}
	return serviceStatus{Status: "healthy", ResponseTimeMS: msSince(start)}
}

func (h *HealthHandler) checkRedis(ctx context.Context) serviceStatus {
	if h.redis == nil {
		return serviceStatus{Status: "skipped"}
	}

	ctx, cancel := context.WithTimeout(ctx, dependencyTimeout)
	defer cancel()

	start := time.Now()
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return serviceStatus{Status: "unhealthy", Error: err.Error()}
	}
	return serviceStatus{Status: "healthy", ResponseTimeMS: msSince(start)}
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
