package port

import (
	"context"

	"campaigniq/internal/core/domain"
)

// PredictionClient calls the external prediction service for one campaign.
// Every invocation results in exactly one outbound call; there is no caching
// and no retry.
type PredictionClient interface {
	Predict(ctx context.Context, c domain.Campaign) (*domain.Prediction, error)
}

// ChatClient talks to the hosted AI content endpoint.
type ChatClient interface {
	// Content sends a bare question and returns the answer text. A response
	// without a content field yields the fixed fallback string, not an error.
	Content(ctx context.Context, question string) (string, error)
	// GeneratedAnswer sends a question together with grounding context
	// (training data) and returns the answer text under the same fallback
	// policy as Content.
	GeneratedAnswer(ctx context.Context, question, trainingData string) (string, error)
}

// ChatUseCase answers dashboard chat messages.
type ChatUseCase interface {
	// Message forwards a question to the AI endpoint without campaign
	// grounding.
	Message(ctx context.Context, message string) (string, error)
	// Answer enriches the question with the current campaign insights before
	// forwarding it. Insight retrieval failures degrade to an ungrounded
	// prompt rather than failing the chat.
	Answer(ctx context.Context, question string) (string, error)
}
