package http

import (
	"net/http"

	"github.com/MKhiriev/go-secure-api/internal/utils"
	"github.com/MKhiriev/go-secure-api/models"
)

const welcomeMessage = "Welcome to the Secure API"

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, models.Capabilities{
		Message:   welcomeMessage,
		Endpoints: h.endpoints(),
	}, http.StatusOK)
}

// writeJSON writes a success body and logs a failed write.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		h.logger.Err(err).Str("uri", r.URL.Path).Msg("failed to write response")
	}
}
