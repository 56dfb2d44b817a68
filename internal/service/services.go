package service

import (
	"github.com/MKhiriev/leads-api/internal/logger"
	"github.com/MKhiriev/leads-api/internal/store"
)

type Services struct {
	DBInfoService DBInfoService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		DBInfoService: NewDBInfoService(storages.InfoRepository, logger),
	}
}
