package service

import (
	"context"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock . DBInfoService

// DBInfoService exposes facts about the connected database.
type DBInfoService interface {
	// GetDBVersion returns the database engine's version string.
	GetDBVersion(ctx context.Context) (string, error)
}
