package contracts

import "time"

// Universe represents the tracked penny-stock set passed from S1 to S2
// ⭐ SSOT: S1 → S2 추적 종목 전달
type Universe struct {
	Month      int               `json:"month"` // 1-12, refresh month
	Date       time.Time         `json:"date"`
	Symbols    []string          `json:"symbols"`               // 추적 종목, dollar volume 내림차순
	Excluded   map[string]string `json:"excluded,omitempty"`    // 제외 종목: 사유
	TotalCount int               `json:"total_count,omitempty"` // 추적 종목 수
}

// Contains checks if a symbol is in the universe
func (u *Universe) Contains(symbol string) bool {
	for _, s := range u.Symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

// IsExcluded checks if a symbol is excluded with reason
func (u *Universe) IsExcluded(symbol string) (bool, string) {
	reason, exists := u.Excluded[symbol]
	return exists, reason
}

// Count returns the number of tracked symbols
func (u *Universe) Count() int {
	return len(u.Symbols)
}
