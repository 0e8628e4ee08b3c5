package domain

import "time"

// Possible Prediction statuses. The status is derived from the external
// predictor's confidence score, never set independently. Aggregation treats it
// as an opaque label.
const (
	StatusHighConfidence = "High Confidence"
	StatusNeedsReview    = "Needs Review"
)

// PredictedEngagement holds the forecast interaction counts for a campaign.
type PredictedEngagement struct {
	Clicks      int64 `json:"clicks"`
	Impressions int64 `json:"impressions"`
}

// Prediction is a model-produced forecast for one campaign. Several
// predictions may reference the same campaign; there is no uniqueness
// constraint on CampaignID. Records are created once and read-only afterward.
type Prediction struct {
	ID                   int64               `json:"-"`
	CampaignID           int64               `json:"campaign_id"`
	PredictedROI         float64             `json:"predicted_roi"`
	PredictedConversions int64               `json:"predicted_conversions"`
	PredictedEngagement  PredictedEngagement `json:"predicted_engagement"`
	// PredictionTimestamp is an ISO-8601 string stamped with the server clock
	// at the moment the predictor response was received.
	PredictionTimestamp string    `json:"prediction_timestamp"`
	ModelUsed           string    `json:"model_used"`
	PredictionStatus    string    `json:"Prediction_Status"`
	CreatedAt           time.Time `json:"createdAt"`
}
