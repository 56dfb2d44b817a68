package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/leads-api/internal/logger"
)

// infoRepository is the PostgreSQL-backed implementation of [InfoRepository].
// Every call runs on its own [Session].
type infoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInfoRepository constructs an [InfoRepository] backed by the provided
// database pool and logger.
func NewInfoRepository(db *DB, logger *logger.Logger) InfoRepository {
	logger.Debug().Msg("creating info repository")
	return &infoRepository{
		db:     db,
		logger: logger,
	}
}

// GetVersion executes a single read-only query returning the server version.
//
// Error handling:
//   - query construction failure → [ErrBuildingSQLQuery];
//   - pool exhaustion or unreachable server → [ErrAcquiringSession];
//   - query or scan failure → [ErrScanningRow].
//
// The driver error is wrapped in every case and its classification and
// SQLSTATE are logged.
func (r *infoRepository) GetVersion(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectVersion.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*infoRepository.GetVersion").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var version string
	err = r.db.WithSession(ctx, func(ctx context.Context, s *Session) error {
		if err := s.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*infoRepository.GetVersion").
			Stringer("class", r.db.errorClassificator.Classify(err)).
			Str("sqlstate", postgresError(err)).
			Msg("error reading database version")
		return "", err
	}

	return version, nil
}
