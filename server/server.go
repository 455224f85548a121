// Package server wires the price list services into an HTTP API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"pricebook/database"
	"pricebook/internal/config"
	"pricebook/pricelist"
	"pricebook/server/handlers"
	servermonitoring "pricebook/server/monitoring"
	"pricebook/server/services"
)

// Version is stamped at build time.
var Version = "dev"

// Config is re-exported for callers that only import this package.
type Config = config.Config

var LoadConfig = config.LoadConfig

// Server is the price list HTTP server.
type Server struct {
	config *Config
	db     *database.PriceDB

	// Services
	priceListService *services.PriceListService
	snapshotService  *services.SnapshotService

	// Handlers
	priceListHandler *handlers.PriceListHandler
	snapshotHandler  *handlers.SnapshotHandler

	// Monitoring
	healthChecker *servermonitoring.HealthChecker

	httpServer  *http.Server
	httpHandler http.Handler

	shutdownChan chan struct{}
	startTime    time.Time

	handlerOnce    sync.Once
	handlerInitErr error
}

// NewServer creates the server and all of its dependencies.
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	ConfigureLogger(cfg.LogLevel)

	db, err := database.NewPriceDBWithConfig(cfg.DatabasePath, database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	engineCfg := cfg.EngineConfig()
	scanner := pricelist.NewScanner(engineCfg)

	priceListService := services.NewPriceListService(db, scanner, cfg.UploadMaxBytes)
	snapshotService := services.NewSnapshotService(db)

	priceListHandler := handlers.NewPriceListHandler(priceListService, snapshotService, engineCfg.AllowedSheets)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	healthChecker := servermonitoring.NewHealthChecker(Version, db.GetDB())
	healthChecker.RegisterComponent("snapshot", snapshotHealthCheck(snapshotService))

	srv := &Server{
		config:           cfg,
		db:               db,
		priceListService: priceListService,
		snapshotService:  snapshotService,
		priceListHandler: priceListHandler,
		snapshotHandler:  snapshotHandler,
		healthChecker:    healthChecker,
		shutdownChan:     make(chan struct{}),
		startTime:        time.Now(),
	}

	// Clear out expired snapshots left over from a previous run.
	if purged, err := snapshotService.PurgeStale(); err != nil {
		LogWarn(context.Background(), "Startup purge failed", "error", err)
	} else if purged > 0 {
		LogInfo(context.Background(), "Startup purge removed stale snapshots", "purged", purged)
	}

	return srv, nil
}

// snapshotHealthCheck reports the snapshot store as degraded when no price
// list is loaded or the loaded one is stale. Both are operator signals, not
// failures.
func snapshotHealthCheck(snapshotService *services.SnapshotService) servermonitoring.HealthCheckFunc {
	return func(ctx context.Context) servermonitoring.ComponentHealth {
		health := servermonitoring.ComponentHealth{
			Name:      "snapshot",
			Status:    servermonitoring.HealthStatusHealthy,
			Timestamp: time.Now(),
		}

		snap, stale, err := snapshotService.CurrentSnapshot()
		switch {
		case err != nil:
			health.Status = servermonitoring.HealthStatusDegraded
			health.Message = "no price list loaded"
		case stale:
			health.Status = servermonitoring.HealthStatusDegraded
			health.Message = fmt.Sprintf("current price list %q is older than one month", snap.FileDate)
		default:
			health.Message = fmt.Sprintf("current price list %q with %d items", snap.FileDate, snap.ItemCount)
		}

		return health
	}
}

// startStalePurger drops expired snapshots on a fixed interval until
// shutdown.
func (s *Server) startStalePurger() {
	interval := s.config.PurgeInterval
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.snapshotService.PurgeStale(); err != nil {
				LogError(context.Background(), err, "Scheduled snapshot purge failed")
			}
		case <-s.shutdownChan:
			return
		}
	}
}

// DB exposes the snapshot store for diagnostics and tests.
func (s *Server) DB() *database.PriceDB {
	return s.db
}

// Uptime reports how long the server has been running.
func (s *Server) Uptime() time.Duration {
	return time.Since(s.startTime)
}
