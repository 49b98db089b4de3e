package s2_alpha

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/wonny/pumpwatch/internal/contracts"
)

// Config holds the intraday-return ranking parameters
type Config struct {
	Lookback       int           // 예측 기간 배수
	Resolution     time.Duration // 기본 해상도 (일봉 = 24h)
	NumberOfStocks int           // 상위 K
}

// DefaultConfig returns the ranking defaults
func DefaultConfig() Config {
	return Config{
		Lookback:       1,
		Resolution:     24 * time.Hour,
		NumberOfStocks: 10,
	}
}

// Model ranks session bars by intraday return and emits reversal insights.
// The biggest intraday gainers are assumed pumped; a Down insight with the
// session return as magnitude is produced for each.
// ⭐ SSOT: S2 인사이트 생성
type Model struct {
	config   Config
	interval time.Duration
	now      func() time.Time
}

// NewModel validates the config and creates a Model
func NewModel(config Config) (*Model, error) {
	if config.Lookback <= 0 {
		return nil, fmt.Errorf("lookback must be > 0, got %d", config.Lookback)
	}
	if config.Resolution <= 0 {
		return nil, fmt.Errorf("resolution must be > 0, got %v", config.Resolution)
	}
	if config.NumberOfStocks <= 0 {
		return nil, fmt.Errorf("number of stocks must be > 0, got %d", config.NumberOfStocks)
	}
	return &Model{
		config:   config,
		interval: config.Resolution * time.Duration(config.Lookback),
		now:      time.Now,
	}, nil
}

// PredictionInterval returns resolution * lookback
func (m *Model) PredictionInterval() time.Duration {
	return m.interval
}

type scoredBar struct {
	symbol string
	ret    float64 // unrounded session return
	key    float64 // ret rounded to 6 decimals, ranking key
}

// Rank scores the session bars and returns the top-K as Down insights.
// Bars without data or with a zero open are skipped. Ordering is by the
// 6-decimal rounded return descending, symbol ascending on ties; the
// emitted magnitude stays unrounded.
func (m *Model) Rank(bars []contracts.SessionBar) []contracts.Insight {
	scored := make([]scoredBar, 0, len(bars))
	for _, bar := range bars {
		ret, ok := bar.Return()
		if !ok {
			continue
		}
		scored = append(scored, scoredBar{
			symbol: bar.Symbol,
			ret:    ret,
			key:    math.Round(ret*1e6) / 1e6,
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].key != scored[j].key {
			return scored[i].key > scored[j].key
		}
		return scored[i].symbol < scored[j].symbol
	})

	if len(scored) > m.config.NumberOfStocks {
		scored = scored[:m.config.NumberOfStocks]
	}

	generatedAt := m.now()
	insights := make([]contracts.Insight, 0, len(scored))
	for _, s := range scored {
		insights = append(insights, contracts.Insight{
			Symbol:      s.symbol,
			Direction:   contracts.DirectionDown,
			Magnitude:   s.ret,
			Period:      m.interval,
			GeneratedAt: generatedAt,
		})
	}
	return insights
}
