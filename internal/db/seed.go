package db

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

// sampleCampaignID identifies the demo campaign inserted on first boot so a
// fresh database renders a non-empty dashboard.
const sampleCampaignID = 942511

// Seed inserts the sample campaign and its prediction when they are absent.
// Existing rows are left untouched, so seeding is safe to run on every boot.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM campaigns WHERE campaign_id = $1)`, sampleCampaignID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		_, err = pool.Exec(ctx, `INSERT INTO campaigns
			(campaign_id, target_audience, campaign_goal, duration, channel_used,
			 conversion_rate, acquisition_cost, roi, location, language, clicks,
			 impressions, engagement_score, customer_segment, date, company,
			 created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,now(),now())`,
			sampleCampaignID, "Men 35-44", "Market Expansion", "15 Days", "Twitter",
			0.14, "$500.00", 1.19, "Los Angeles", "French", 501,
			3003, 8, "Food", "2022-08-14", "Culinary Quest")
		if err != nil {
			return err
		}
	}

	err = pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM predictions WHERE campaign_id = $1)`, sampleCampaignID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		engagement, _ := json.Marshal(map[string]int64{"clicks": 1040, "impressions": 4541})
		_, err = pool.Exec(ctx, `INSERT INTO predictions
			(campaign_id, predicted_roi, predicted_conversions, predicted_engagement,
			 prediction_timestamp, model_used, prediction_status, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,now())`,
			sampleCampaignID, 0.265235036611557, 0, engagement,
			"2025-02-15T17:55:14.321795", "XGBoost", "Needs Improvement")
		if err != nil {
			return err
		}
	}
	return nil
}
