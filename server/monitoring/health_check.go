package monitoring

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"sync"
	"time"
)

// HealthStatus is the health state of a component.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// ComponentHealth is the health of a single component.
type ComponentHealth struct {
	Name      string        `json:"name"`
	Status    HealthStatus  `json:"status"`
	Message   string        `json:"message,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Latency   time.Duration `json:"latency,omitempty"`
}

// HealthCheckResult is the aggregated health of the system.
type HealthCheckResult struct {
	Status     HealthStatus               `json:"status"`
	Timestamp  time.Time                  `json:"timestamp"`
	Uptime     time.Duration              `json:"uptime"`
	Version    string                     `json:"version"`
	Components map[string]ComponentHealth `json:"components"`
	System     SystemHealth               `json:"system"`
}

// SystemHealth holds runtime metrics.
type SystemHealth struct {
	MemoryUsage float64 `json:"memory_usage_percent"`
	Goroutines  int     `json:"goroutines"`
}

// HealthChecker checks the database and any registered components.
type HealthChecker struct {
	mu         sync.RWMutex
	components map[string]HealthCheckFunc
	startTime  time.Time
	version    string
	db         *sql.DB
}

// HealthCheckFunc checks the health of a single component.
type HealthCheckFunc func(ctx context.Context) ComponentHealth

// NewHealthChecker creates a new HealthChecker.
func NewHealthChecker(version string, db *sql.DB) *HealthChecker {
	return &HealthChecker{
		components: make(map[string]HealthCheckFunc),
		startTime:  time.Now(),
		version:    version,
		db:         db,
	}
}

// RegisterComponent registers a component health check.
func (hc *HealthChecker) RegisterComponent(name string, checkFunc HealthCheckFunc) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.components[name] = checkFunc
}

// Check runs all health checks and aggregates the result.
func (hc *HealthChecker) Check(ctx context.Context) HealthCheckResult {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	components := make(map[string]ComponentHealth)
	overallStatus := HealthStatusHealthy

	if hc.db != nil {
		start := time.Now()
		err := hc.db.PingContext(ctx)
		latency := time.Since(start)
		status := HealthStatusHealthy
		message := "Database is healthy"
		if err != nil {
			status = HealthStatusUnhealthy
			message = fmt.Sprintf("Database error: %v", err)
			overallStatus = HealthStatusUnhealthy
		}
		components["database"] = ComponentHealth{
			Name:      "database",
			Status:    status,
			Message:   message,
			Timestamp: time.Now(),
			Latency:   latency,
		}
	}

	for name, checkFunc := range hc.components {
		componentHealth := checkFunc(ctx)
		components[name] = componentHealth
		if componentHealth.Status == HealthStatusUnhealthy {
			overallStatus = HealthStatusUnhealthy
		} else if componentHealth.Status == HealthStatusDegraded && overallStatus == HealthStatusHealthy {
			overallStatus = HealthStatusDegraded
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	memoryUsage := float64(m.Alloc) / float64(m.Sys) * 100
	if memoryUsage > 100 {
		memoryUsage = 100
	}

	return HealthCheckResult{
		Status:     overallStatus,
		Timestamp:  time.Now(),
		Uptime:     time.Since(hc.startTime),
		Version:    hc.version,
		Components: components,
		System: SystemHealth{
			MemoryUsage: memoryUsage,
			Goroutines:  runtime.NumGoroutine(),
		},
	}
}

// HTTPHandler returns the handler for the health check endpoint.
// Unhealthy maps to 503, degraded still answers 200.
func (hc *HealthChecker) HTTPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result := hc.Check(ctx)

		statusCode := http.StatusOK
		if result.Status == HealthStatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(result)
	}
}

// LivenessHandler returns a plain liveness probe.
func (hc *HealthChecker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

// ReadinessHandler returns a readiness probe. Ready means the database
// answers the ping.
func (hc *HealthChecker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		result := hc.Check(ctx)

		if dbHealth, ok := result.Components["database"]; ok {
			if dbHealth.Status == HealthStatusHealthy {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("Ready"))
				return
			}
		}

		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Not Ready"))
	}
}

// LogHealthStatus logs the current health status.
func (hc *HealthChecker) LogHealthStatus() {
	result := hc.Check(context.Background())

	slog.Info("Health check",
		"status", result.Status,
		"uptime", result.Uptime,
		"components", len(result.Components),
		"goroutines", result.System.Goroutines,
		"memory_usage", fmt.Sprintf("%.2f%%", result.System.MemoryUsage),
	)

	for name, component := range result.Components {
		if component.Status != HealthStatusHealthy {
			slog.Warn("Component health issue",
				"component", name,
				"status", component.Status,
				"message", component.Message,
			)
		}
	}
}
