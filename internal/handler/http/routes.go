package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-secure-api/internal/failure"
)

// route is one entry of the dispatch table.
type route struct {
	method  string
	pattern string

	// advertised is the name listed by GET /, empty to hide the route.
	advertised string

	handler http.HandlerFunc
}

// routes is the complete dispatch table, registered in order. The user
// route is a wildcard so the whole remainder of the path is the raw
// identifier and "/api/user/1/2" reaches the identifier check.
func (h *Handler) routes() []route {
	return []route{
		{method: http.MethodGet, pattern: "/", handler: h.home},
		{method: http.MethodGet, pattern: "/api/user/*", advertised: "/api/user/:id", handler: h.getUser},
		{method: http.MethodPost, pattern: "/api/process", advertised: "/api/process", handler: h.process},
		{method: http.MethodPost, pattern: "/api/payment", advertised: "/api/payment", handler: h.payment},
	}
}

// endpoints lists the advertised route names in table order.
func (h *Handler) endpoints() []string {
	var names []string
	for _, rt := range h.routes() {
		if rt.advertised != "" {
			names = append(names, rt.advertised)
		}
	}
	return names
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withRecovery,
		h.withRequestTimeout,
		h.withRateLimit,
	)

	for _, rt := range h.routes() {
		router.Method(rt.method, rt.pattern, rt.handler)
	}

	// an unsupported method answers exactly like an unknown path
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	failure.Respond(w, r, failure.New(failure.RouteNotFound, "no route for "+r.Method+" "+r.URL.Path), "router")
}
