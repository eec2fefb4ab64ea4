package controller

import "net/http"

// WithCORS returns a middleware that allows allowedOrigin ("*" for any) to
// call the wrapped handler, and answers OPTIONS preflight requests with 204
// No Content without calling it.
func WithCORS(allowedOrigin string, next http.Handler) http.Handler {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", allowedOrigin)
		if allowedOrigin != "*" {
			h.Add("Vary", "Origin")
		}
		h.Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, X-Firebase-AppCheck, X-Request-Id")
		h.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")

		if r.Method == http.MethodOptions {
			h.Set("Access-Control-Max-Age", "3600")
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
