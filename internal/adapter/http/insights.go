package httpadapter

import (
	"log/slog"
	"net/http"

	"campaigniq/internal/core/port"
)

// handleCampaignInsights returns the combined campaign/prediction view used
// by the dashboard, bounded to the default limit of 20 entries. An empty
// store answers with an empty array, never an error.
func (h *Handler) handleCampaignInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.campaigns.ListInsights(r.Context(), port.DefaultInsightLimit)
	if err != nil {
		h.logger.Error("campaign insights error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Error fetching campaign insights",
			"error":   err.Error(),
		})
		return
	}
	h.writeJSON(w, http.StatusOK, insights)
}
