package server

import (
	"context"
	"fmt"
)

// Lifespan holds application hooks bracketing the serving period.
type Lifespan struct {
	// OnStartup runs once before the listener accepts traffic. A non-nil
	// error aborts startup.
	OnStartup func(ctx context.Context) error

	// OnShutdown runs once after the listener stopped. When nil, shutdown
	// performs no cleanup beyond draining requests. cmd/server sets it to
	// close the database pool.
	OnShutdown func(ctx context.Context) error
}

type Option func(*server)

func WithLifespan(lifespan Lifespan) Option {
	return func(s *server) {
		s.lifespan = lifespan
	}
}

func (l Lifespan) runOnShutdown(ctx context.Context) error {
	if l.OnShutdown == nil {
		return nil
	}
	if err := l.OnShutdown(ctx); err != nil {
		return fmt.Errorf("shutdown hook: %w", err)
	}
	return nil
}
