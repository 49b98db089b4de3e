package contracts

import (
	"context"
	"time"
)

// CoarseSource supplies the daily coarse snapshot (S0)
// ⭐ SSOT: S0 코스 스냅샷 인터페이스
type CoarseSource interface {
	GetCoarseSnapshot(ctx context.Context, date time.Time) (*CoarseSnapshot, error)
}

// SessionSource supplies session bars for tracked symbols (S0)
// ⭐ SSOT: S0 세션 가격 인터페이스
type SessionSource interface {
	GetSessionBars(ctx context.Context, symbols []string, date time.Time) (*SessionSnapshot, error)
}

// UniverseSelector selects the tracked penny-stock set (S1)
// ⭐ SSOT: S1 유니버스 선정 인터페이스
type UniverseSelector interface {
	Select(currentMonth int, candidates []CoarseStock) []string
}

// InsightModel ranks session bars into insights (S2)
// ⭐ SSOT: S2 인사이트 생성 인터페이스
type InsightModel interface {
	Rank(bars []SessionBar) []Insight
}

// InsightSink consumes produced insight batches (external collaborator)
type InsightSink interface {
	Publish(batch *InsightBatch)
}
