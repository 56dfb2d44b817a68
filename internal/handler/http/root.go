package http

import (
	"net/http"

	"github.com/MKhiriev/leads-api/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, models.MessageResponse{Message: "Hello World"}, http.StatusOK)
}
