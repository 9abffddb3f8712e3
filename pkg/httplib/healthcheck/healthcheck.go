package healthcheck

import (
	"fmt"
	"net/http"
)

// Path is the endpoint the health check responds on.
const Path = "/health"

// HealthCheck intercepts GET /health requests before they reach the
// wrapped handler.
type HealthCheck struct {
}

// Handler wraps h, answering health check requests itself and passing
// everything else through.
func (hc HealthCheck) Handler(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if IsHealthCheckRequest(r) {
			hc.ServeHTTP(w, r)

			return
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// ServeHTTP serves the health check response.
func (hc HealthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"status":"ok"}`)
}

// IsHealthCheckRequest checks if the request targets the health
// endpoint.
func IsHealthCheckRequest(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.Path == Path
}
