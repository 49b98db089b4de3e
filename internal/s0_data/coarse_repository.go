package s0_data

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/pumpwatch/internal/contracts"
)

// CoarseRepository implements contracts.CoarseSource
// ⭐ SSOT: 코스 스냅샷 저장소는 여기서만
type CoarseRepository struct {
	pool *pgxpool.Pool
}

// NewCoarseRepository creates a new coarse repository
func NewCoarseRepository(pool *pgxpool.Pool) *CoarseRepository {
	return &CoarseRepository{pool: pool}
}

// GetCoarseSnapshot retrieves one trading day's coarse records with the
// dollar volume computed in SQL (volume * close)
func (r *CoarseRepository) GetCoarseSnapshot(ctx context.Context, date time.Time) (*contracts.CoarseSnapshot, error) {
	query := `
		SELECT
			dp.symbol,
			(f.symbol IS NOT NULL) as has_fundamental_data,
			dp.volume,
			dp.close_price,
			dp.volume * dp.close_price as dollar_volume
		FROM data.daily_prices dp
		LEFT JOIN data.fundamentals f ON dp.symbol = f.symbol
		WHERE dp.session_date = $1
		ORDER BY dp.symbol
	`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshot := &contracts.CoarseSnapshot{
		Date:   date,
		Stocks: make([]contracts.CoarseStock, 0),
	}
	for rows.Next() {
		var s contracts.CoarseStock
		if err := rows.Scan(&s.Symbol, &s.HasFundamentalData, &s.Volume, &s.Price, &s.DollarVolume); err != nil {
			return nil, err
		}
		snapshot.Stocks = append(snapshot.Stocks, s)
	}
	return snapshot, rows.Err()
}

// SaveCoarseStock upserts one coarse record
func (r *CoarseRepository) SaveCoarseStock(ctx context.Context, date time.Time, stock contracts.CoarseStock) error {
	query := `
		INSERT INTO data.daily_prices (symbol, session_date, close_price, volume)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (symbol, session_date) DO UPDATE SET
			close_price = EXCLUDED.close_price,
			volume = EXCLUDED.volume
	`

	_, err := r.pool.Exec(ctx, query, stock.Symbol, date, stock.Price, stock.Volume)
	return err
}
