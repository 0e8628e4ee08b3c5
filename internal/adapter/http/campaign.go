package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaigniq/internal/core/domain"
	"campaigniq/internal/core/port"
)

// handleCreateCampaign runs the ingestion pipeline for a partial campaign
// body. Performance fields supplied by the caller are ignored; the usecase
// zeroes them. On success it answers 201 with {campaign, prediction}. Any
// pipeline failure, including a predictor outage after the campaign was
// already written, produces HTTP 500 with a {message} body.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var input domain.Campaign
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	result, err := h.campaigns.Ingest(r.Context(), input)
	if err != nil {
		h.logger.Error("create campaign error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusCreated, result)
}

// handleGetCampaign returns one campaign by its identifier. Unknown ids
// answer 404 with a {message} body.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	campaign, err := h.campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.respondError(w, "get campaign error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaign)
}

// handleListCampaigns dumps the raw campaign collection.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.ListCampaigns(r.Context())
	if err != nil {
		h.respondError(w, "list campaigns error", err)
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleListPredictions dumps the raw prediction collection.
func (h *Handler) handleListPredictions(w http.ResponseWriter, r *http.Request) {
	predictions, err := h.campaigns.ListPredictions(r.Context())
	if err != nil {
		h.respondError(w, "list predictions error", err)
		return
	}
	if predictions == nil {
		predictions = []domain.Prediction{}
	}
	h.writeJSON(w, http.StatusOK, predictions)
}

func (h *Handler) respondError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, slog.Any("error", err))
	status := http.StatusInternalServerError
	if errors.Is(err, port.ErrNotFound) {
		status = http.StatusNotFound
	}
	h.writeMessage(w, status, err.Error())
}
