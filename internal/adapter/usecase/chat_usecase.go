package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"campaigniq/internal/core/domain"
	"campaigniq/internal/core/port"
)

// assistantPreamble is the fixed system preamble sent ahead of the serialized
// campaign insights when answering grounded questions.
const assistantPreamble = `You are an AI assistant for a business analytics dashboard. You have access to data about:
- Sales performance and metrics
- Customer information and demographics
- Transaction history and patterns
- Geographic distribution of sales
- Daily and monthly trends
- Product performance and inventory
- Marketing campaign results and predictions

Current Campaign Data:
%INSIGHTS%

When answering questions about campaigns:
- Use the actual campaign data provided above
- Reference specific campaign success predictions
- Provide confidence levels when available
- Give data-driven recommendations based on historical performance

Please provide helpful, business-focused responses to help users understand their data and make data-driven decisions.

Current context:
Date: %DATE%
Time: %TIME%`

// ChatUseCase implements port.ChatUseCase. Ungrounded messages go straight to
// the content API; grounded answers are first enriched with the current
// campaign insight list.
type ChatUseCase struct {
	insights port.CampaignUseCase
	chat     port.ChatClient
	now      func() time.Time
}

// NewChatUseCase creates the chat usecase.
func NewChatUseCase(insights port.CampaignUseCase, chat port.ChatClient) *ChatUseCase {
	return &ChatUseCase{insights: insights, chat: chat, now: time.Now}
}

// Message forwards a question to the AI endpoint without campaign grounding.
func (u *ChatUseCase) Message(ctx context.Context, message string) (string, error) {
	return u.chat.Content(ctx, message)
}

// Answer fetches the current insight list, embeds it into the fixed preamble
// and asks the content API for a grounded answer. Insight retrieval failures
// degrade to an empty data section instead of failing the chat.
func (u *ChatUseCase) Answer(ctx context.Context, question string) (string, error) {
	insights, err := u.insights.ListInsights(ctx, port.DefaultInsightLimit)
	if err != nil {
		insights = []domain.CombinedInsight{}
	}
	return u.chat.GeneratedAnswer(ctx, question, u.trainingData(insights))
}

// trainingData renders the preamble with the serialized insights and the
// current wall clock.
func (u *ChatUseCase) trainingData(insights []domain.CombinedInsight) string {
	serialized, err := json.MarshalIndent(insights, "", "  ")
	if err != nil {
		serialized = []byte("[]")
	}
	now := u.now()
	replacer := strings.NewReplacer(
		"%INSIGHTS%", string(serialized),
		"%DATE%", now.Format("2006-01-02"),
		"%TIME%", now.Format("15:04:05"),
	)
	return replacer.Replace(assistantPreamble)
}
