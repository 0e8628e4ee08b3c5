package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaigniq/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `campaign_id, target_audience, campaign_goal, duration, channel_used,
	conversion_rate, acquisition_cost, roi, location, language, clicks, impressions,
	engagement_score, customer_segment, date, company, created_at, updated_at`

// Create inserts a campaign and fills the store-assigned identifier and
// timestamps in place. The identifier comes from the campaigns sequence, so
// concurrent creates never collide.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	now := time.Now().UTC()
	return r.pool.QueryRow(ctx, `INSERT INTO campaigns
		(target_audience, campaign_goal, duration, channel_used, conversion_rate,
		 acquisition_cost, roi, location, language, clicks, impressions,
		 engagement_score, customer_segment, date, company, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$16)
		RETURNING campaign_id, created_at, updated_at`,
		c.TargetAudience, c.CampaignGoal, c.Duration, c.ChannelUsed, c.ConversionRate,
		c.AcquisitionCost, c.ROI, c.Location, c.Language, c.Clicks, c.Impressions,
		c.EngagementScore, c.CustomerSegment, c.Date, c.Company, now,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// GetByID returns a campaign by identifier, or nil when it does not exist.
func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE campaign_id = $1`, id).
		Scan(&c.ID, &c.TargetAudience, &c.CampaignGoal, &c.Duration, &c.ChannelUsed,
			&c.ConversionRate, &c.AcquisitionCost, &c.ROI, &c.Location, &c.Language,
			&c.Clicks, &c.Impressions, &c.EngagementScore, &c.CustomerSegment,
			&c.Date, &c.Company, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll returns every stored campaign, oldest first.
func (r *CampaignRepository) GetAll(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY campaign_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err = row.Scan(&c.ID, &c.TargetAudience, &c.CampaignGoal, &c.Duration, &c.ChannelUsed,
			&c.ConversionRate, &c.AcquisitionCost, &c.ROI, &c.Location, &c.Language,
			&c.Clicks, &c.Impressions, &c.EngagementScore, &c.CustomerSegment,
			&c.Date, &c.Company, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
}
