package http

import (
	"net/http"

	"github.com/MKhiriev/go-secure-api/internal/failure"
)

const wherePayment = "POST /api/payment"

// payment charges a request carrying a numeric, non-zero "amount".
func (h *Handler) payment(w http.ResponseWriter, r *http.Request) {
	body, err := h.validator.ReadBody(w, r)
	if err != nil {
		failure.Respond(w, r, err, wherePayment)
		return
	}

	decoded, err := h.validator.Decode(body)
	if err != nil {
		failure.Respond(w, r, err, wherePayment)
		return
	}

	req, err := h.validator.ValidateAmount(decoded)
	if err != nil {
		failure.Respond(w, r, err, wherePayment)
		return
	}

	result, err := h.services.PaymentService.Charge(r.Context(), req)
	if err != nil {
		failure.Respond(w, r, failure.Wrap(failure.DomainFailure, err, "payment failed"), wherePayment)
		return
	}

	h.writeJSON(w, r, result, http.StatusOK)
}
