package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPath is where Pprof is meant to be mounted.
const PprofPath = "/debug/pprof/"

// Pprof returns a handler serving net/http/pprof under PprofPath. Named
// profiles (heap, goroutine, allocs, ...) are served by name.
func Pprof() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", pprof.Index)
	mux.HandleFunc("GET /cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /profile", pprof.Profile)
	mux.HandleFunc("GET /symbol", pprof.Symbol)
	mux.HandleFunc("POST /symbol", pprof.Symbol)
	mux.HandleFunc("GET /trace", pprof.Trace)
	mux.HandleFunc("GET /{profile}", func(w http.ResponseWriter, r *http.Request) {
		pprof.Handler(r.PathValue("profile")).ServeHTTP(w, r)
	})

	return http.StripPrefix(PprofPath[:len(PprofPath)-1], mux)
}
