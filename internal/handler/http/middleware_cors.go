package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

var corsBaseMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// withCORS allows the configured frontend origin with credentials, any
// method and any request header. Only mounted in debug mode.
//
// go-chi/cors has no method wildcard, so the method of the request (or the
// one announced by a preflight) is added to the allowed set per request.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cors.Handler(h.corsOptions(r))(next).ServeHTTP(w, r)
		})
	}
}

func (h *Handler) corsOptions(r *http.Request) cors.Options {
	methods := make([]string, 0, len(corsBaseMethods)+2)
	methods = append(methods, corsBaseMethods...)
	methods = append(methods, strings.ToUpper(r.Method))
	if requested := r.Header.Get("Access-Control-Request-Method"); requested != "" {
		methods = append(methods, strings.ToUpper(requested))
	}

	return cors.Options{
		AllowedOrigins:   []string{h.corsOrigin},
		AllowedMethods:   methods,
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
