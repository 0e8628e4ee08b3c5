package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// handleChatMessage forwards a question to the AI endpoint without campaign
// grounding and answers {response}. Upstream failures produce HTTP 500 with
// {error, details}; the widget shows its own apology string instead of these.
func (h *Handler) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	h.serveChat(w, r, h.chat.Message)
}

// handleChatAssistant answers a question grounded with the current campaign
// insight list. Same request and error shape as the plain message endpoint.
func (h *Handler) handleChatAssistant(w http.ResponseWriter, r *http.Request) {
	h.serveChat(w, r, h.chat.Answer)
}

func (h *Handler) serveChat(w http.ResponseWriter, r *http.Request, ask func(ctx context.Context, q string) (string, error)) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	answer, err := ask(r.Context(), req.Message)
	if err != nil {
		h.logger.Error("chat error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to get chat response",
			"details": err.Error(),
		})
		return
	}
	h.writeJSON(w, http.StatusOK, chatResponse{Response: answer})
}
