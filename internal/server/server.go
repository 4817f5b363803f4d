package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/MKhiriev/go-config-sets/internal/config"
	"github.com/MKhiriev/go-config-sets/internal/handler"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/service"
	"github.com/MKhiriev/go-config-sets/internal/workers"
	"github.com/MKhiriev/go-config-sets/models"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	logger *logger.Logger
}

// NewServer wires the router built from handlers into an HTTP server bound
// to address. Workers run for as long as the server does; nil means none.
func NewServer(handlers *handler.Handlers, w *workers.Workers, address string, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHandlersProvided
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), address, logger),
		workers:    w,
		logger:     logger,
	}, nil
}

// ListenAddress returns the configured SERVER_ADDRESS or, when unset, the
// port stored in the UI settings on all interfaces.
func ListenAddress(ctx context.Context, cfg config.Server, settings service.UISettingsService) string {
	if cfg.HTTPAddress != "" {
		return cfg.HTTPAddress
	}

	port := models.DefaultUIPort
	if stored, err := settings.Get(ctx); err == nil && stored.Port > 0 {
		port = stored.Port
	} else if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("falling back to default port")
	}
	return net.JoinHostPort("", strconv.Itoa(port))
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if s.workers != nil {
			s.workers.Run(ctx)
		}
	}()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err = <-serveErr:
		stop()
		<-workersDone
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = s.Shutdown(shutdownCtx)
	<-workersDone
	if err != nil {
		return err
	}
	if err = <-serveErr; err != nil {
		return fmt.Errorf("error serving: %w", err)
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
