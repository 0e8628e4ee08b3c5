package port

import (
	"context"

	"campaigniq/internal/core/domain"
)

// CampaignRepository defines persistence for campaign records. It is an
// outbound port in hexagonal architecture.
type CampaignRepository interface {
	// Create persists a new campaign and fills its store-assigned identifier
	// and timestamps in place. The identifier is immutable once assigned.
	Create(ctx context.Context, c *domain.Campaign) error
	// GetByID returns the campaign with the given identifier, or nil when it
	// does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	// GetAll returns every stored campaign.
	GetAll(ctx context.Context) ([]domain.Campaign, error)
}

// PredictionRepository defines persistence for prediction records. Multiple
// predictions per campaign are permitted; no uniqueness is enforced on the
// campaign identifier.
type PredictionRepository interface {
	// Create persists a new prediction and fills its surrogate id in place.
	Create(ctx context.Context, p *domain.Prediction) error
	// ListRecent returns up to limit predictions, newest first by insertion
	// order. An empty store yields an empty slice, not an error.
	ListRecent(ctx context.Context, limit int) ([]domain.Prediction, error)
	// GetAll returns every stored prediction.
	GetAll(ctx context.Context) ([]domain.Prediction, error)
}
