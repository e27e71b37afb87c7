package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-secure-api/internal/failure"
)

const whereRecovery = "recovery"

// withRecovery turns a handler panic into the generic 500 response. The
// panic value goes to the log only. If the handler already started its
// response, the panic is logged and nothing more is written, so the client
// never gets a second body. http.ErrAbortHandler is re-raised so net/http
// can abort the connection as intended.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*responseWriter)
		if !ok {
			rw = &responseWriter{ResponseWriter: w}
		}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := failure.New(failure.DomainFailure, fmt.Sprintf("panic: %v", rec))
			if rw.started() {
				failure.Report(r.Context(), err, whereRecovery)
				return
			}
			failure.Respond(rw, r, err, whereRecovery)
		}()

		next.ServeHTTP(rw, r)
	})
}
