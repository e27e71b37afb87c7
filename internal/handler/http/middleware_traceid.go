package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-secure-api/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a trace id to the request context, its logger and the
// response headers. A client supplied id is reused only if it is a UUID;
// anything else is replaced rather than echoed.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := h.traceIDs.Generate()
		if fromHeader, err := uuid.Parse(r.Header.Get(traceIDHeader)); err == nil {
			traceID = fromHeader.String()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
