package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/02loveslollipop/sgsb-barragens/services/api/config"
	"github.com/02loveslollipop/sgsb-barragens/services/api/db"
	"github.com/02loveslollipop/sgsb-barragens/services/api/session"
	"github.com/02loveslollipop/sgsb-barragens/services/api/storage"
)

// Revoker tracks logged-out session tokens.
type Revoker interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// BlobStore stores uploaded documents.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (storage.Object, error)
}

// Server bundles router and dependencies for the REST API.
type Server struct {
	cfg     config.Config
	store   *db.Store
	tokens  *session.Tokens
	revoker Revoker
	blobs   BlobStore
	logger  *zap.Logger
	engine  *gin.Engine
	now     func() time.Time
}

// New constructs a server with routes and middleware. revoker and blobs may be nil.
func New(cfg config.Config, store *db.Store, revoker Revoker, blobs BlobStore, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.SessionCookie == "" {
		cfg.SessionCookie = "app_session_id"
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(logger))
	engine.Use(corsMiddleware())

	server := &Server{
		cfg:     cfg,
		store:   store,
		tokens:  session.NewTokens(cfg.JWTSecret),
		revoker: revoker,
		blobs:   blobs,
		logger:  logger,
		engine:  engine,
		now:     time.Now,
	}
	server.registerRoutes()
	return server
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.handleHealth)
	s.registerV1Routes()
}

func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestContext bounds a handler's store calls.
func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), s.cfg.RequestTimeout)
}
