package s2_alpha

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/pumpwatch/internal/contracts"
)

// Repository handles data persistence for S2
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository instance
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// SaveInsights saves an insight batch, replacing any batch for the same date
func (r *Repository) SaveInsights(ctx context.Context, batch *contracts.InsightBatch) error {
	insightsJSON, err := json.Marshal(batch.Insights)
	if err != nil {
		return fmt.Errorf("marshal insights: %w", err)
	}

	query := `
		INSERT INTO data.insight_batches (
			session_date,
			insights,
			insight_count,
			created_at
		) VALUES ($1, $2, $3, NOW())
		ON CONFLICT (session_date) DO UPDATE SET
			insights = EXCLUDED.insights,
			insight_count = EXCLUDED.insight_count,
			created_at = NOW()
	`

	_, err = r.db.Exec(ctx, query,
		batch.Date,
		insightsJSON,
		batch.Count(),
	)
	if err != nil {
		return fmt.Errorf("insert insights: %w", err)
	}

	return nil
}

// GetInsightsByDate retrieves the insight batch for one session date
func (r *Repository) GetInsightsByDate(ctx context.Context, date time.Time) (*contracts.InsightBatch, error) {
	query := `
		SELECT session_date, insights
		FROM data.insight_batches
		WHERE session_date = $1
	`

	batch := &contracts.InsightBatch{}
	var insightsJSON []byte
	err := r.db.QueryRow(ctx, query, date).Scan(&batch.Date, &insightsJSON)
	if err != nil {
		return nil, fmt.Errorf("query insights: %w", err)
	}

	if err := json.Unmarshal(insightsJSON, &batch.Insights); err != nil {
		return nil, fmt.Errorf("unmarshal insights: %w", err)
	}

	return batch, nil
}

// GetLatestInsights retrieves the most recent insight batch
func (r *Repository) GetLatestInsights(ctx context.Context) (*contracts.InsightBatch, error) {
	query := `
		SELECT session_date, insights
		FROM data.insight_batches
		ORDER BY session_date DESC
		LIMIT 1
	`

	batch := &contracts.InsightBatch{}
	var insightsJSON []byte
	err := r.db.QueryRow(ctx, query).Scan(&batch.Date, &insightsJSON)
	if err != nil {
		return nil, fmt.Errorf("query latest insights: %w", err)
	}

	if err := json.Unmarshal(insightsJSON, &batch.Insights); err != nil {
		return nil, fmt.Errorf("unmarshal insights: %w", err)
	}

	return batch, nil
}
