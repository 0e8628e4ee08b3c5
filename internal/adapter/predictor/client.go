package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"campaigniq/internal/core/domain"
	"campaigniq/internal/core/port"
)

// ModelUsed names the model stamped onto every prediction produced through
// this client.
const ModelUsed = "Campaign Predictor v1"

// confidenceThreshold splits predictions into the two derived statuses.
const confidenceThreshold = 0.7

// Client calls the local model server over HTTP. It implements
// port.PredictionClient. Every Predict call performs exactly one request;
// there is no caching and no retry, callers decide what to do on failure.
type Client struct {
	endpoint string
	client   *http.Client
	now      func() time.Time
}

// NewClient creates a prediction client for the given endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		now:      time.Now,
	}
}

type predictResponse struct {
	PredictedROI         float64                    `json:"predicted_roi"`
	PredictedConversions int64                      `json:"predicted_conversions"`
	PredictedEngagement  domain.PredictedEngagement `json:"predicted_engagement"`
	Confidence           float64                    `json:"confidence"`
}

// Predict sends the campaign record to the model server and maps its answer
// into a Prediction. The prediction timestamp is the server clock at receipt,
// not the predictor's own clock. Transport errors and non-success statuses
// both surface as port.ErrPredictionUnavailable.
func (c *Client) Predict(ctx context.Context, campaign domain.Campaign) (*domain.Prediction, error) {
	payload, err := json.Marshal(campaign)
	if err != nil {
		return nil, fmt.Errorf("marshal campaign: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrPredictionUnavailable, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", port.ErrPredictionUnavailable, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", port.ErrPredictionUnavailable, res.StatusCode, body)
	}

	var raw predictResponse
	if err = json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", port.ErrPredictionUnavailable, err)
	}

	status := domain.StatusNeedsReview
	if raw.Confidence > confidenceThreshold {
		status = domain.StatusHighConfidence
	}

	return &domain.Prediction{
		CampaignID:           campaign.ID,
		PredictedROI:         raw.PredictedROI,
		PredictedConversions: raw.PredictedConversions,
		PredictedEngagement:  raw.PredictedEngagement,
		PredictionTimestamp:  c.now().UTC().Format(time.RFC3339Nano),
		ModelUsed:            ModelUsed,
		PredictionStatus:     status,
	}, nil
}
