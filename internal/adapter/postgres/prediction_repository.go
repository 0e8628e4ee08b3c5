package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaigniq/internal/core/domain"
)

// PredictionRepository implements port.PredictionRepository using pgxpool.
// The nested predicted_engagement document is stored as JSONB.
type PredictionRepository struct {
	pool *pgxpool.Pool
}

// NewPredictionRepository returns a new repository instance.
func NewPredictionRepository(pool *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{pool: pool}
}

// Create inserts a prediction and fills its surrogate id in place.
func (r *PredictionRepository) Create(ctx context.Context, p *domain.Prediction) error {
	engagement, err := json.Marshal(p.PredictedEngagement)
	if err != nil {
		return err
	}
	p.CreatedAt = time.Now().UTC()
	return r.pool.QueryRow(ctx, `INSERT INTO predictions
		(campaign_id, predicted_roi, predicted_conversions, predicted_engagement,
		 prediction_timestamp, model_used, prediction_status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id`,
		p.CampaignID, p.PredictedROI, p.PredictedConversions, engagement,
		p.PredictionTimestamp, p.ModelUsed, p.PredictionStatus, p.CreatedAt,
	).Scan(&p.ID)
}

// ListRecent returns up to limit predictions, newest first by insertion
// order.
func (r *PredictionRepository) ListRecent(ctx context.Context, limit int) ([]domain.Prediction, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, predicted_roi, predicted_conversions,
		predicted_engagement, prediction_timestamp, model_used, prediction_status, created_at
		FROM predictions ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return collectPredictions(rows)
}

// GetAll returns every stored prediction, oldest first.
func (r *PredictionRepository) GetAll(ctx context.Context) ([]domain.Prediction, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, predicted_roi, predicted_conversions,
		predicted_engagement, prediction_timestamp, model_used, prediction_status, created_at
		FROM predictions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectPredictions(rows)
}

func collectPredictions(rows pgx.Rows) ([]domain.Prediction, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Prediction, error) {
		var (
			p   domain.Prediction
			raw []byte
		)
		err := row.Scan(&p.ID, &p.CampaignID, &p.PredictedROI, &p.PredictedConversions,
			&raw, &p.PredictionTimestamp, &p.ModelUsed, &p.PredictionStatus, &p.CreatedAt)
		if err != nil {
			return p, err
		}
		if len(raw) > 0 {
			if err = json.Unmarshal(raw, &p.PredictedEngagement); err != nil {
				return p, err
			}
		}
		return p, nil
	})
}
