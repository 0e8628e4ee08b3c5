package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"

	"campaigniq/internal/core/domain"
	"campaigniq/internal/core/port"
)

// insightTTL is how long the combined-insight projection may be served from
// cache, matching the dashboard's five minute refresh budget.
const insightTTL = 300 // seconds

// CampaignUseCase implements port.CampaignUseCase: the ingestion pipeline and
// the insight aggregation read path. A small TTL cache fronts the insight
// reads; ingest invalidates it so a fresh prediction shows up immediately.
type CampaignUseCase struct {
	campaigns   port.CampaignRepository
	predictions port.PredictionRepository
	predictor   port.PredictionClient
	cache       *freecache.Cache
}

// NewCampaignUseCase creates the usecase with its collaborators. cache may be
// shared with other usecases; keys are prefixed.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	predictions port.PredictionRepository,
	predictor port.PredictionClient,
	cache *freecache.Cache,
) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns:   campaigns,
		predictions: predictions,
		predictor:   predictor,
		cache:       cache,
	}
}

// Ingest runs the strictly sequential create flow: persist the campaign with
// zeroed performance fields, ask the predictor for a forecast, persist the
// forecast under the campaign's identifier. A failure after the campaign
// write leaves the campaign queryable; there is no compensating rollback.
func (u *CampaignUseCase) Ingest(ctx context.Context, input domain.Campaign) (*port.IngestResult, error) {
	campaign := input
	campaign.ID = 0
	campaign.ConversionRate = 0
	campaign.AcquisitionCost = "$0"
	campaign.ROI = 0
	campaign.Clicks = 0
	campaign.Impressions = 0
	campaign.EngagementScore = 0

	if err := u.campaigns.Create(ctx, &campaign); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrCampaignPersist, err)
	}

	prediction, err := u.predictor.Predict(ctx, campaign)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrPrediction, err)
	}
	prediction.CampaignID = campaign.ID

	if err = u.predictions.Create(ctx, prediction); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrPredictionPersist, err)
	}

	u.invalidateInsights()

	return &port.IngestResult{Campaign: campaign, Prediction: *prediction}, nil
}

// ListInsights returns up to limit combined insights, newest prediction
// first. An empty store yields an empty slice. Results are cached per limit
// for insightTTL seconds.
func (u *CampaignUseCase) ListInsights(ctx context.Context, limit int) ([]domain.CombinedInsight, error) {
	key := insightKey(limit)
	if cached, err := u.cache.Get(key); err == nil {
		var insights []domain.CombinedInsight
		if err = json.Unmarshal(cached, &insights); err == nil {
			return insights, nil
		}
	}

	predictions, err := u.predictions.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	insights := make([]domain.CombinedInsight, 0, len(predictions))
	for _, p := range predictions {
		insights = append(insights, domain.CombinedInsight{
			Campaign:   domain.InsightCampaignRef{CampaignID: p.CampaignID},
			Prediction: p,
		})
	}

	if data, err := json.Marshal(insights); err == nil {
		_ = u.cache.Set(key, data, insightTTL)
	}
	return insights, nil
}

// GetCampaign returns one campaign by identifier. A missing row surfaces as
// port.ErrNotFound so the transport can answer 404.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, fmt.Errorf("%w: campaign %d", port.ErrNotFound, id)
	}
	return campaign, nil
}

// ListCampaigns returns the raw campaign collection.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.campaigns.GetAll(ctx)
}

// ListPredictions returns the raw prediction collection.
func (u *CampaignUseCase) ListPredictions(ctx context.Context) ([]domain.Prediction, error) {
	return u.predictions.GetAll(ctx)
}

func (u *CampaignUseCase) invalidateInsights() {
	u.cache.Del(insightKey(port.DefaultInsightLimit))
}

func insightKey(limit int) []byte {
	return []byte(fmt.Sprintf("insights:%d", limit))
}
