package contracts

import "time"

// SessionBar is one tracked symbol's open/close for a single session
// ⭐ SSOT: S0 → S2 세션 가격 전달
type SessionBar struct {
	Symbol  string  `json:"symbol"`
	Open    float64 `json:"open"`
	Close   float64 `json:"close"`
	HasData bool    `json:"has_data"`
}

// Return computes the intraday return (close/open - 1).
// The second result is false when the bar has no data or a zero open,
// in which case the bar must be ignored.
func (b SessionBar) Return() (float64, bool) {
	if !b.HasData || b.Open == 0 {
		return 0, false
	}
	return b.Close/b.Open - 1, true
}

// SessionSnapshot is the set of session bars for one trading day
type SessionSnapshot struct {
	Date time.Time    `json:"date"`
	Bars []SessionBar `json:"bars"`
}
