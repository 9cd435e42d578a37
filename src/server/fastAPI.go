package server

//go:generate mockgen -package=server -destination=mock_state_provider_test.go -source=../interfaces/state_provider.go IStateProvider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"market-viewer/src/config"
	"market-viewer/src/format"
	"market-viewer/src/interfaces"
	"market-viewer/src/logger"
	"market-viewer/src/models"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// FastAPIServer
// -----------------------------------------------------------------------------

type FastAPIServer struct {
	Config    *config.Config
	Logger    *logger.Logger
	Provider  interfaces.IStateProvider
	Formatter *format.Formatter

	engine *gin.Engine
	http   *http.Server

	// WebSocket clients, owned by the hub goroutine
	clients     map[*Client]struct{}
	connections atomic.Int32
	changed     chan struct{}
	direct      chan directMessage
	register    chan *Client
	unregister  chan *Client
	quit        chan struct{}
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewFastAPIServer(cfg *config.Config, provider interfaces.IStateProvider, formatter *format.Formatter, log *logger.Logger) *FastAPIServer {
	// Set Gin mode
	if !strings.EqualFold(cfg.LogLevel, "DEBUG") {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &FastAPIServer{
		Config:    cfg,
		Logger:    log,
		Provider:  provider,
		Formatter: formatter,
		engine:    gin.New(),
		clients:   make(map[*Client]struct{}),
		// one slot: the hub always reads the newest state, so queued
		// notifications can be folded together
		changed:    make(chan struct{}, 1),
		direct:     make(chan directMessage),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		quit:       make(chan struct{}),
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(s.requestLogger())
	s.engine.Use(corsMiddleware())

	s.setupRoutes()
	s.http = &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	provider.Subscribe(s.notify)
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *FastAPIServer) setupRoutes() {
	api := s.engine.Group("/api")
	api.GET("/state", s.getState)
	api.GET("/instruments", s.getInstruments)
	api.POST("/refresh", s.postRefresh)
	api.GET("/attempts", s.getAttempts)
	api.GET("/health", s.getHealth)
	api.GET("/config", s.getConfig)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// Handler exposes the router, mainly for tests.
func (s *FastAPIServer) Handler() http.Handler {
	return s.engine
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

// Start serves until Stop is called. It returns nil after a clean shutdown.
func (s *FastAPIServer) Start() error {
	s.Logger.Info("Starting server on %s", s.http.Addr)

	go s.handleWebsockets()

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

// Stop shuts the listener down and disconnects websocket clients.
func (s *FastAPIServer) Stop(ctx context.Context) error {
	select {
	case <-s.quit:
		return nil
	default:
		close(s.quit)
	}
	return s.http.Shutdown(ctx)
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *FastAPIServer) getState(c *gin.Context) {
	c.JSON(http.StatusOK, models.Summarize(s.Provider.State()))
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) getInstruments(c *gin.Context) {
	name := c.Query("category")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}
	query := c.Query("q")

	st := s.Provider.State()
	category, items := s.instruments(st, name, query)

	c.JSON(http.StatusOK, gin.H{
		"status":      st.Status,
		"category":    category,
		"q":           query,
		"count":       len(items),
		"instruments": items,
	})
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) postRefresh(c *gin.Context) {
	if err := s.Provider.RefreshNow(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) getAttempts(c *gin.Context) {
	attempts := s.Provider.Attempts()
	if attempts == nil {
		attempts = []models.MFetchAttempt{}
	}
	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) getHealth(c *gin.Context) {
	st := s.Provider.State()

	resp := gin.H{
		"status":      healthStatus(st),
		"poll_status": st.Status,
		"connections": s.connections.Load(),
	}
	if !st.LastSuccess.IsZero() {
		resp["last_success"] = st.LastSuccess
	}
	c.JSON(http.StatusOK, resp)
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, s.Config.Redacted())
}

// -----------------------------------------------------------------------------
// Middleware
// -----------------------------------------------------------------------------

func (s *FastAPIServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Logger.Debug("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// -----------------------------------------------------------------------------

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") || strings.HasPrefix(origin, "http://localhost:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
