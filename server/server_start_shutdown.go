package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"pricebook/server/handlers"
	"pricebook/server/middleware"
)

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		return err
	}

	// WriteTimeout stays generous for large workbook uploads on slow links.
	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	go s.startStalePurger()

	LogInfo(context.Background(), "Starting HTTP server",
		"addr", s.httpServer.Addr,
		"database", s.config.DatabasePath,
		"upload_max_bytes", s.config.UploadMaxBytes,
	)
	s.healthChecker.LogHealthStatus()

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server failed on %s: %w", s.httpServer.Addr, err)
	}

	return nil
}

func (s *Server) ensureHTTPHandler() (http.Handler, error) {
	s.handlerOnce.Do(func() {
		handler, err := s.buildHTTPHandler()
		if err != nil {
			s.handlerInitErr = err
			return
		}
		s.httpHandler = handler
	})

	if s.handlerInitErr != nil {
		return nil, s.handlerInitErr
	}

	if s.httpHandler == nil {
		return nil, fmt.Errorf("httpHandler is nil")
	}

	return s.httpHandler, nil
}

func (s *Server) buildHTTPHandler() (http.Handler, error) {
	// Release mode unless GIN_MODE overrides it.
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())

	handlers.RegisterSwaggerRoutes(router)

	s.registerGinHandlers(router)

	return router, nil
}

// ServeHTTP implements http.Handler for tests and embedding.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		http.Error(w, "server is not initialized", http.StatusInternalServerError)
		return
	}

	handler.ServeHTTP(w, r)
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	LogInfo(ctx, "Initiating graceful shutdown")

	close(s.shutdownChan)

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.db.Close(); err != nil {
		LogWarn(ctx, "Closing database failed", "error", err)
	}

	LogInfo(ctx, "Graceful shutdown completed")
	return nil
}

// registerGinHandlers registers all API routes.
func (s *Server) registerGinHandlers(router *gin.Engine) {
	// Plain liveness endpoint without dependencies.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "pricebook",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")

	// Health API
	api.GET("/health", handlers.GinHandlerFunc(s.healthChecker.HTTPHandler()))
	api.GET("/health/live", handlers.GinHandlerFunc(s.healthChecker.LivenessHandler()))
	api.GET("/health/ready", handlers.GinHandlerFunc(s.healthChecker.ReadinessHandler()))

	// Price list API
	if s.priceListHandler != nil {
		pricelistAPI := api.Group("/pricelist")
		{
			pricelistAPI.POST("/upload",
				middleware.GinUploadLimitMiddleware(s.config.UploadRatePerMin),
				s.priceListHandler.HandleUploadGin)
			pricelistAPI.GET("/current", s.priceListHandler.HandleCurrentGin)
			pricelistAPI.GET("/groups", s.priceListHandler.HandleGroupsGin)
		}
	}

	// Snapshot history API
	if s.snapshotHandler != nil {
		snapshotsAPI := api.Group("/pricelist/snapshots")
		{
			snapshotsAPI.GET("", s.snapshotHandler.HandleSnapshotsListGin)
			snapshotsAPI.GET("/:uuid", s.snapshotHandler.HandleSnapshotGetGin)
			snapshotsAPI.DELETE("/:uuid", s.snapshotHandler.HandleSnapshotDeleteGin)
		}
	}
}
