package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rasoighar/backend/internal/logger"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
}

// New creates a new server instance
func New(router *gin.Engine) *Server {
	return &Server{router: router}
}

// Start runs the server and blocks until an interrupt signal arrives,
// then shuts down gracefully.
func (s *Server) Start(port string) error {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
