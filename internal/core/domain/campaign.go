package domain

import "time"

// Campaign represents a marketing campaign record. JSON field names keep the
// dashboard's original casing so existing clients keep working unchanged.
// The five performance fields (Conversion_Rate, Acquisition_Cost, ROI, Clicks,
// Impressions, Engagement_Score) always start at their zero defaults; they are
// never taken from caller input on create.
type Campaign struct {
	ID              int64     `json:"Campaign_ID"`
	TargetAudience  string    `json:"Target_Audience"`
	CampaignGoal    string    `json:"Campaign_Goal"`
	Duration        string    `json:"Duration"`
	ChannelUsed     string    `json:"Channel_Used"`
	ConversionRate  float64   `json:"Conversion_Rate"`
	AcquisitionCost string    `json:"Acquisition_Cost"`
	ROI             float64   `json:"ROI"`
	Location        string    `json:"Location"`
	Language        string    `json:"Language"`
	Clicks          int64     `json:"Clicks"`
	Impressions     int64     `json:"Impressions"`
	EngagementScore int64     `json:"Engagement_Score"`
	CustomerSegment string    `json:"Customer_Segment"`
	Date            string    `json:"Date"`
	Company         string    `json:"Company"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
