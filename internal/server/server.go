package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/MKhiriev/leads-api/internal/config"
	"github.com/MKhiriev/leads-api/internal/handler"
	"github.com/MKhiriev/leads-api/internal/logger"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer      *httpServer
	lifespan        Lifespan
	shutdownTimeout time.Duration

	started      atomic.Bool
	shutdownOnce sync.Once
	shutdownErr  error

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, opts ...Option) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return newServer(handlers.HTTP.Init(), cfg, logger, opts...), nil
}

func newServer(h http.Handler, cfg config.Server, logger *logger.Logger, opts ...Option) *server {
	s := &server{
		httpServer:      newHTTPServer(h, cfg.HTTPAddress),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *server) RunServer(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errAlreadyStarted
	}

	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if s.lifespan.OnStartup != nil {
		s.logger.Info().Msg("running startup hook")
		if err := s.lifespan.OnStartup(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrStartupFailed, err)
		}
	}

	ln, err := s.httpServer.listen()
	if err != nil {
		return errors.Join(err, s.runShutdownHook(context.Background()))
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()
	s.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server started")

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
	case runErr = <-serveErr:
		s.logger.Error().Err(runErr).Msg("HTTP server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

// Shutdown stops the listener and then runs the shutdown hook. Only the
// first call has an effect.
func (s *server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		s.shutdownErr = errors.Join(
			s.httpServer.shutdown(ctx),
			s.lifespan.runOnShutdown(ctx),
		)
	})
	return s.shutdownErr
}

// runShutdownHook is used when serving never started, so there is no
// listener to stop.
func (s *server) runShutdownHook(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.shutdownErr = s.lifespan.runOnShutdown(ctx)
		err = s.shutdownErr
	})
	return err
}
