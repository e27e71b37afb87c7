package http

import (
	"context"
	"net/http"
)

// withRequestTimeout bounds the context handed to services by the
// configured request timeout.
func (h *Handler) withRequestTimeout(next http.Handler) http.Handler {
	if h.cfg.RequestTimeout <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
