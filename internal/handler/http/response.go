package http

import (
	"net/http"

	"github.com/MKhiriev/leads-api/internal/logger"
	"github.com/MKhiriev/leads-api/internal/utils"
)

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
