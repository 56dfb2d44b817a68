// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/leads-api/internal/logger"
	"github.com/MKhiriev/leads-api/models"
)

const dbConnectionFailedPrefix = "Database connection failed: "

// getDBVersion reports the database version. Failures are returned as an
// "error" field with status 200, never as a non-2xx response.
func (h *Handler) getDBVersion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	version, err := h.services.DBInfoService.GetDBVersion(r.Context())
	if err != nil {
		log.Err(err).Msg("failed to get database version")
		h.writeJSON(w, r, models.ErrorResponse{Error: dbConnectionFailedPrefix + err.Error()}, http.StatusOK)
		return
	}

	h.writeJSON(w, r, models.DBVersionResponse{DBVersion: version}, http.StatusOK)
}
