package http

import "net/http"

// healthCheck is a liveness probe: it answers 200 with an empty body as long
// as the process is able to serve HTTP.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Length", "0")
	w.WriteHeader(http.StatusOK)
}
