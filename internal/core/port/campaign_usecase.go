package port

import (
	"context"

	"campaigniq/internal/core/domain"
)

// DefaultInsightLimit bounds the insight list returned to the dashboard.
const DefaultInsightLimit = 20

// CampaignUseCase defines the business operations around campaigns and their
// predictions. This is the primary inbound port of the application.
type CampaignUseCase interface {
	// Ingest creates a campaign record, obtains a prediction for it from the
	// external predictor and persists both. Steps run strictly in sequence
	// with no internal concurrency. A predictor or prediction-persist failure
	// leaves the already-written campaign in place: at least a campaign
	// exists, the create is deliberately not atomic.
	Ingest(ctx context.Context, input domain.Campaign) (*IngestResult, error)

	// ListInsights returns up to limit combined insights, newest prediction
	// first. It never fails on an empty store; it returns an empty slice.
	ListInsights(ctx context.Context, limit int) ([]domain.CombinedInsight, error)

	// GetCampaign returns one campaign by identifier, or ErrNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// ListCampaigns returns the raw campaign collection.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// ListPredictions returns the raw prediction collection.
	ListPredictions(ctx context.Context) ([]domain.Prediction, error)
}

// IngestResult is the combined outcome of a successful ingestion: the stored
// campaign and its freshly persisted prediction.
type IngestResult struct {
	Campaign   domain.Campaign   `json:"campaign"`
	Prediction domain.Prediction `json:"prediction"`
}
