package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avasiljevs/userauth/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server runs the HTTP endpoint.
type Server struct {
	address string
	logger  logging.Logger
	engine  *gin.Engine
}

// NewServer builds the gin engine with all routes registered. Admin routes
// live under /admin behind the bearer middleware.
func NewServer(address string, logger logging.Logger, service AccountService, secretKey string) *Server {
	gin.SetMode(gin.ReleaseMode)

	handler := NewHandler(service, logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), requestIDMiddleware(), loggingMiddleware(logger))

	engine.POST("/login", handler.LoginHandler)
	engine.POST("/logout", handler.LogoutHandler)
	engine.GET("/token", handler.VerifyTokenHandler)
	engine.POST("/user", handler.RegisterHandler)
	engine.PATCH("/user", handler.UpdateHandler)
	engine.DELETE("/user", handler.DeleteHandler)

	admin := engine.Group("/admin", adminAuthMiddleware([]byte(secretKey)))
	admin.PATCH("/user", handler.AdminUpdateHandler)
	admin.DELETE("/user", handler.AdminDeleteHandler)

	return &Server{
		address: address,
		logger:  logger.With("module", "http_server"),
		engine:  engine,
	}
}

// Engine exposes the router for tests.
func (s *Server) Engine() http.Handler {
	return s.engine
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.engine}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "err", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
