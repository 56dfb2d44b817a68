// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/leads-api/internal/logger"
)

// Session is a request-scoped handle to a single pooled connection.
// A Session is not safe for concurrent use and must be released exactly once.
type Session struct {
	conn *sql.Conn
}

// AcquireSession takes a dedicated connection from the pool. The caller owns
// the returned Session and must call [Session.Release]; prefer
// [DB.WithSession], which does that on every exit path.
func (db *DB) AcquireSession(ctx context.Context) (*Session, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquiringSession, err)
	}

	return &Session{conn: conn}, nil
}

// Release returns the underlying connection to the pool.
func (s *Session) Release() error {
	return s.conn.Close()
}

// QueryRowContext executes a query that is expected to return at most one row.
func (s *Session) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return s.conn.QueryRowContext(ctx, query, args...)
}

// WithSession acquires a Session, passes it to fn and releases it afterwards,
// also when fn returns an error or panics. Each call gets its own Session.
func (db *DB) WithSession(ctx context.Context, fn func(ctx context.Context, s *Session) error) error {
	s, err := db.AcquireSession(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Release(); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.WithSession").Msg("error releasing session")
		}
	}()

	return fn(ctx, s)
}
