package pprof

import (
	"expvar"
	"net/http"
	"net/http/pprof"
	"strings"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// NewHandler exposes the runtime profiles and expvar under prefix.
func NewHandler(prefix string) *Handler {
	prefix = strings.TrimSuffix(prefix, "/")
	mux := &http.ServeMux{}

	routes := map[string]http.HandlerFunc{
		"/":        pprof.Index,
		"/cmdline": pprof.Cmdline,
		"/profile": pprof.Profile,
		"/symbol":  pprof.Symbol,
		"/trace":   pprof.Trace,
	}

	for route, fn := range routes {
		mux.HandleFunc("GET "+prefix+route, fn)
	}

	mux.Handle("GET "+prefix+"/vars", expvar.Handler())

	mux.HandleFunc("GET "+prefix+"/{name}", func(w http.ResponseWriter, r *http.Request) {
		pprof.Handler(r.PathValue("name")).ServeHTTP(w, r)
	})

	return &Handler{mux}
}

var _ http.Handler = &Handler{}
