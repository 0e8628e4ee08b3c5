package domain

// InsightCampaignRef identifies the campaign side of a combined insight. Only
// the identifier is carried; callers needing full campaign detail query the
// campaign collection separately.
type InsightCampaignRef struct {
	CampaignID int64 `json:"Campaign_ID"`
}

// CombinedInsight pairs a campaign identifier with one prediction. It is a
// read-time projection built by the insights aggregator and is never stored.
type CombinedInsight struct {
	Campaign   InsightCampaignRef `json:"campaign"`
	Prediction Prediction         `json:"prediction"`
}
