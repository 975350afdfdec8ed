package api

import (
	"fmt"
	"net/http"

	"afisha/internal/config"
	"afisha/internal/handlers"
	"afisha/internal/metrics"
	"afisha/internal/middleware"
	"afisha/internal/repository"
	"afisha/internal/service"
	"afisha/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wires the in-memory store, the services and the HTTP routes. The
// store has a single lifetime owned here; everything else borrows it.
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *store.Store
	repos    *repository.Repositories
	services *service.Services
	metrics  *metrics.Metrics
}

// NewServer creates a fully wired server instance
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db := store.New()
	repos := repository.NewRepositories(db)
	m := metrics.New()
	services := service.NewServices(repos, db, m)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		repos:    repos,
		services: services,
		metrics:  m,
	}

	server.setupRoutes()

	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services)

	api := s.router.Group("/api")
	{
		shows := api.Group("/shows")
		{
			shows.POST("", h.RegisterShow)
			shows.PATCH("/price", h.UpdatePrice)
			shows.PATCH("/start", h.StartShow)
			shows.PATCH("/end", h.EndShow)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", h.OrderTicket)
			bookings.PATCH("/cancel", h.CancelBooking)
		}

		api.GET("/stats", h.PerCinemaStats)
		api.POST("/reset", h.ResetStore)
	}

	s.router.GET("/health", s.healthCheck)

	if s.config.MetricsEnabled {
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

// healthCheck handles liveness probes
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "afisha-api",
		"version": "1.0.0",
	})
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter exposes the router for tests
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
