package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaigniq/internal/core/port"
)

// Pinger reports database connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the inbound HTTP adapter. It holds the campaign and chat
// usecases, a logger for structured request logging and the chi router the
// routes are registered on.
type Handler struct {
	campaigns port.CampaignUseCase
	chat      port.ChatUseCase
	db        Pinger
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, chat port.ChatUseCase, db Pinger, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, chat: chat, db: db, logger: logger}
	r := chi.NewRouter()
	r.Use(h.requestLogger)

	r.Route("/general", func(r chi.Router) {
		r.Get("/campaign-insights", h.handleCampaignInsights)
		r.Post("/campaign", h.handleCreateCampaign)
		r.Get("/campaign/{id}", h.handleGetCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/predictions", h.handleListPredictions)
	})
	r.Route("/chat", func(r chi.Router) {
		r.Post("/message", h.handleChatMessage)
		r.Post("/assistant", h.handleChatAssistant)
	})
	r.Get("/health", h.handleHealth)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v with the given status. Encoding failures are logged;
// by then the status line is already on the wire.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeMessage writes the {message} error body used by the general routes.
func (h *Handler) writeMessage(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"message": msg})
}
