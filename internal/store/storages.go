package store

import (
	"github.com/MKhiriev/leads-api/internal/logger"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	InfoRepository InfoRepository
}

// NewStorages builds every repository on top of the shared pool.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		InfoRepository: NewInfoRepository(db, logger),
	}
}
