package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-secure-api/internal/failure"
	"github.com/MKhiriev/go-secure-api/models"
)

const whereGetUser = "GET /api/user/:id"

// getUser answers {"user": row} or {"user": null}.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := h.validator.ValidateIdentifier(chi.URLParam(r, "*"))
	if err != nil {
		failure.Respond(w, r, err, whereGetUser)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		failure.Respond(w, r, failure.Wrap(failure.DomainFailure, err, "user lookup failed"), whereGetUser)
		return
	}

	h.writeJSON(w, r, models.UserResponse{User: user}, http.StatusOK)
}
