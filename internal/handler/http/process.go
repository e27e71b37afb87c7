package http

import (
	"net/http"

	"github.com/MKhiriev/go-secure-api/internal/failure"
)

const whereProcess = "POST /api/process"

// process accepts any JSON object within the size ceiling.
func (h *Handler) process(w http.ResponseWriter, r *http.Request) {
	body, err := h.validator.ReadBody(w, r)
	if err != nil {
		failure.Respond(w, r, err, whereProcess)
		return
	}

	decoded, err := h.validator.Decode(body)
	if err != nil {
		failure.Respond(w, r, err, whereProcess)
		return
	}

	payload, err := h.validator.ValidateShape(decoded)
	if err != nil {
		failure.Respond(w, r, err, whereProcess)
		return
	}

	result, err := h.services.ProcessingService.Process(r.Context(), payload)
	if err != nil {
		failure.Respond(w, r, failure.Wrap(failure.DomainFailure, err, "processing failed"), whereProcess)
		return
	}

	h.writeJSON(w, r, result, http.StatusOK)
}
