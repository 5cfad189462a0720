package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/cnpj-dv/internal/api/handlers"
	"github.com/nexconsult/cnpj-dv/internal/api/middleware"
	"github.com/nexconsult/cnpj-dv/internal/config"
	"github.com/nexconsult/cnpj-dv/internal/models"
	"github.com/nexconsult/cnpj-dv/internal/services"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	Router      *gin.Engine
	config      *config.Config
	logger      *logrus.Logger
	services    *services.Container
	rateLimiter *middleware.RateLimiter
	httpServer  *http.Server
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, logger *logrus.Logger, services *services.Container) *Server {
	server := &Server{
		config:   cfg,
		logger:   logger,
		services: services,
	}

	server.setupRouter()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// setupRouter configures the router with all routes and middleware
func (s *Server) setupRouter() {
	s.Router = gin.New()

	// Masked CNPJs carry a '/', which clients send as %2F in path parameters
	s.Router.UseRawPath = true
	s.Router.UnescapePathValues = true

	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Logger(s.logger))
	s.Router.Use(middleware.Recovery(s.logger))
	s.Router.Use(middleware.Metrics(s.services.Metrics))
	s.Router.Use(middleware.CORS(s.config.Security.CORS))
	s.Router.Use(middleware.Security())

	s.rateLimiter = middleware.NewRateLimiter(s.config.Security.RateLimit)

	// Health checks and metrics (no rate limiting)
	healthHandler := handlers.NewHealthHandler(s, s.logger)
	s.Router.GET("/health", healthHandler.GetHealth)
	s.Router.GET("/health/ready", healthHandler.GetReadiness)
	s.Router.GET("/health/live", healthHandler.GetLiveness)

	s.Router.GET("/metrics", handlers.NewMetricsHandler(s.services.Metrics.Handler()).GetMetrics)

	if !s.config.IsProduction() {
		s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		s.Router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})
	}

	v1 := s.Router.Group("/api/v1")
	v1.Use(s.rateLimiter.Middleware())
	{
		cnpjHandler := handlers.NewCNPJHandler(s.services.CNPJService, s.config.Cache.TTL, s.logger)
		cnpj := v1.Group("/cnpj")
		{
			cnpj.GET("/validate/:cnpj", cnpjHandler.ValidateCNPJ)
			cnpj.POST("/validate", cnpjHandler.ValidateCNPJBody)
			cnpj.GET("/check-digits/:cnpj", cnpjHandler.GenerateCheckDigits)
			cnpj.POST("/check-digits", cnpjHandler.GenerateCheckDigitsBody)
		}

		cache := v1.Group("/cache")
		cache.Use(middleware.AdminAuth(s.config.Security.AdminToken))
		{
			cacheHandler := handlers.NewCacheHandler(s.services.CacheService, s.logger)
			cache.GET("/stats", cacheHandler.GetStats)
			cache.DELETE("/clear", cacheHandler.Clear)
			cache.DELETE("/:cnpj", cacheHandler.Delete)
		}
	}

	s.Router.HandleMethodNotAllowed = true

	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:     "Not Found",
			Message:   "The requested resource was not found",
			Code:      "NOT_FOUND",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	})

	s.Router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{
			Error:     "Method Not Allowed",
			Message:   fmt.Sprintf("Method %s is not allowed for this resource", c.Request.Method),
			Code:      "METHOD_NOT_ALLOWED",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	})
}

// Health reports the service container and the rate limiter
func (s *Server) Health() map[string]interface{} {
	health := s.services.Health()
	health["rate_limiter"] = s.rateLimiter.GetStats()
	return health
}

// Start listens on the configured port and blocks until the server stops.
// A graceful Shutdown makes Start return nil.
func (s *Server) Start() error {
	s.logger.WithFields(logrus.Fields{
		"port":        s.config.Server.Port,
		"environment": s.config.Server.Environment,
	}).Info("Server starting...")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops background work
func (s *Server) Shutdown(ctx context.Context) error {
	s.rateLimiter.Stop()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}
	return nil
}
