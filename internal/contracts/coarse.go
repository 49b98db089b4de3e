package contracts

import "time"

// CoarseStock is one symbol's entry in the daily coarse snapshot
// ⭐ SSOT: S0 → S1 코스 스냅샷 전달
type CoarseStock struct {
	Symbol             string  `json:"symbol"`
	HasFundamentalData bool    `json:"has_fundamental_data"`
	Volume             int64   `json:"volume"`        // 전일 거래량 (주)
	Price              float64 `json:"price"`         // 전일 종가 (USD)
	DollarVolume       float64 `json:"dollar_volume"` // 거래대금 (USD)
}

// CoarseSnapshot is the full coarse universe for one trading day
type CoarseSnapshot struct {
	Date   time.Time     `json:"date"`
	Stocks []CoarseStock `json:"stocks"`
}

// Count returns the number of symbols in the snapshot
func (s *CoarseSnapshot) Count() int {
	return len(s.Stocks)
}
