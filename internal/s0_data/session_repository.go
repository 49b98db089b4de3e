package s0_data

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/pumpwatch/internal/contracts"
)

// SessionRepository implements contracts.SessionSource
// ⭐ SSOT: 세션 가격 저장소는 여기서만
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// GetSessionBars retrieves open/close bars for the tracked symbols on one
// session date. Symbols with no stored row come back with HasData=false so
// downstream ranking can skip them without losing track of the request.
func (r *SessionRepository) GetSessionBars(ctx context.Context, symbols []string, date time.Time) (*contracts.SessionSnapshot, error) {
	query := `
		SELECT symbol, open_price, close_price
		FROM data.daily_prices
		WHERE session_date = $1 AND symbol = ANY($2)
	`

	rows, err := r.pool.Query(ctx, query, date, symbols)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := make(map[string]contracts.SessionBar, len(symbols))
	for rows.Next() {
		var b contracts.SessionBar
		if err := rows.Scan(&b.Symbol, &b.Open, &b.Close); err != nil {
			return nil, err
		}
		b.HasData = true
		found[b.Symbol] = b
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	snapshot := &contracts.SessionSnapshot{
		Date: date,
		Bars: make([]contracts.SessionBar, 0, len(symbols)),
	}
	for _, sym := range symbols {
		if bar, ok := found[sym]; ok {
			snapshot.Bars = append(snapshot.Bars, bar)
			continue
		}
		snapshot.Bars = append(snapshot.Bars, contracts.SessionBar{Symbol: sym, HasData: false})
	}
	return snapshot, nil
}

// SaveSessionBar upserts one session bar
func (r *SessionRepository) SaveSessionBar(ctx context.Context, date time.Time, bar contracts.SessionBar) error {
	query := `
		INSERT INTO data.daily_prices (symbol, session_date, open_price, close_price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (symbol, session_date) DO UPDATE SET
			open_price = EXCLUDED.open_price,
			close_price = EXCLUDED.close_price
	`

	_, err := r.pool.Exec(ctx, query, bar.Symbol, date, bar.Open, bar.Close)
	return err
}
