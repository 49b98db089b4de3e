package s1_universe

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/wonny/pumpwatch/internal/contracts"
)

// Config holds universe filter criteria
type Config struct {
	MaxSymbols          int     // 추적 종목 상한
	MinVolume           int64   // strict: volume > MinVolume
	MaxVolume           int64   // strict: volume < MaxVolume
	MinPrice            float64 // strict: price > MinPrice
	MaxPrice            float64 // strict: price < MaxPrice
	RequireFundamentals bool    // 펀더멘털 데이터 필수
}

// DefaultConfig returns the stock filter defaults
func DefaultConfig() Config {
	return Config{
		MaxSymbols:          500,
		MinVolume:           10000,
		MaxVolume:           1000000,
		MinPrice:            0,
		MaxPrice:            5,
		RequireFundamentals: true,
	}
}

// Selector filters the coarse snapshot down to the tracked penny-stock set.
// The symbol list is recomputed once per calendar month; within a month the
// cached list is returned untouched regardless of the candidates supplied.
// ⭐ SSOT: S1 유니버스 선정
type Selector struct {
	config Config

	mu        sync.Mutex
	lastMonth int // 0 = 아직 선정 전
	symbols   []string
	excluded  map[string]string
}

// NewSelector validates the config and creates a Selector
func NewSelector(config Config) (*Selector, error) {
	if config.MaxSymbols <= 0 {
		return nil, fmt.Errorf("max symbols must be > 0, got %d", config.MaxSymbols)
	}
	if config.MinVolume < 0 {
		return nil, fmt.Errorf("min volume must be >= 0, got %d", config.MinVolume)
	}
	if config.MinVolume >= config.MaxVolume {
		return nil, fmt.Errorf("volume band invalid: min=%d max=%d", config.MinVolume, config.MaxVolume)
	}
	if config.MinPrice < 0 {
		return nil, fmt.Errorf("min price must be >= 0, got %f", config.MinPrice)
	}
	if config.MinPrice >= config.MaxPrice {
		return nil, fmt.Errorf("price band invalid: min=%f max=%f", config.MinPrice, config.MaxPrice)
	}
	return &Selector{config: config}, nil
}

// Select returns the tracked symbols for the given calendar month (1-12).
// On a month change the candidates are re-filtered, sorted by dollar volume
// descending (stable), and capped at MaxSymbols; otherwise the cached list
// from the last refresh is returned.
func (s *Selector) Select(currentMonth int, candidates []contracts.CoarseStock) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if currentMonth == s.lastMonth {
		return s.symbols
	}
	s.lastMonth = currentMonth

	excluded := make(map[string]string)
	eligible := make([]contracts.CoarseStock, 0, len(candidates))
	for _, stock := range candidates {
		reason := s.checkExclusion(stock)
		if reason != "" {
			excluded[stock.Symbol] = reason
			continue
		}
		eligible = append(eligible, stock)
	}

	// 달러 거래대금 내림차순, 입력 순서 보존 (stable)
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].DollarVolume > eligible[j].DollarVolume
	})

	if len(eligible) > s.config.MaxSymbols {
		eligible = eligible[:s.config.MaxSymbols]
	}

	symbols := make([]string, 0, len(eligible))
	for _, stock := range eligible {
		symbols = append(symbols, stock.Symbol)
	}

	s.symbols = symbols
	s.excluded = excluded
	return s.symbols
}

// checkExclusion checks if a stock fails a filter and returns the reason
func (s *Selector) checkExclusion(stock contracts.CoarseStock) string {
	if s.config.RequireFundamentals && !stock.HasFundamentalData {
		return "no fundamental data"
	}
	if stock.Volume <= s.config.MinVolume {
		return fmt.Sprintf("volume too low (%d)", stock.Volume)
	}
	if stock.Volume >= s.config.MaxVolume {
		return fmt.Sprintf("volume too high (%d)", stock.Volume)
	}
	if stock.Price <= s.config.MinPrice {
		return fmt.Sprintf("price too low (%.2f)", stock.Price)
	}
	if stock.Price >= s.config.MaxPrice {
		return fmt.Sprintf("price too high (%.2f)", stock.Price)
	}
	return "" // 통과
}

// Snapshot returns the current universe state for persistence
func (s *Selector) Snapshot(date time.Time) *contracts.Universe {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbols := make([]string, len(s.symbols))
	copy(symbols, s.symbols)

	excluded := make(map[string]string, len(s.excluded))
	for sym, reason := range s.excluded {
		excluded[sym] = reason
	}

	return &contracts.Universe{
		Month:      s.lastMonth,
		Date:       date,
		Symbols:    symbols,
		Excluded:   excluded,
		TotalCount: len(symbols),
	}
}
