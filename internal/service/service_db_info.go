package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/leads-api/internal/logger"
	"github.com/MKhiriev/leads-api/internal/store"
)

type dbInfoService struct {
	repository store.InfoRepository

	logger *logger.Logger
}

func NewDBInfoService(repository store.InfoRepository, logger *logger.Logger) DBInfoService {
	return &dbInfoService{
		repository: repository,
		logger:     logger,
	}
}

// GetDBVersion asks the repository once; there is no retry.
func (s *dbInfoService) GetDBVersion(ctx context.Context) (string, error) {
	version, err := s.repository.GetVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	logger.FromContext(ctx).Debug().Str("db_version", version).Msg("database version received")
	return version, nil
}
