package httpadapter

import "net/http"

// handleHealth reports service liveness and database connectivity.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	postgres := "connected"
	status := "healthy"
	if err := h.db.Ping(r.Context()); err != nil {
		postgres = "disconnected"
		status = "unhealthy"
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":   status,
		"postgres": postgres,
	})
}
