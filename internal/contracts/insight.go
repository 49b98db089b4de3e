package contracts

import "time"

// Direction is the predicted price direction of an insight
type Direction int

const (
	DirectionDown Direction = -1
	DirectionFlat Direction = 0
	DirectionUp   Direction = 1
)

// String returns the human-readable direction
func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionUp:
		return "up"
	default:
		return "flat"
	}
}

// Insight is a directional/magnitude prediction passed from S2 to consumers
// ⭐ SSOT: S2 → 소비자 예측 전달. 생성 후 불변
type Insight struct {
	Symbol      string        `json:"symbol"`
	Direction   Direction     `json:"direction"`
	Magnitude   float64       `json:"magnitude"`            // signed intraday return, unrounded
	Confidence  *float64      `json:"confidence,omitempty"` // unset for this model
	Period      time.Duration `json:"period"`               // prediction interval
	GeneratedAt time.Time     `json:"generated_at"`
}

// IsDown checks if the insight predicts a price drop
func (i *Insight) IsDown() bool {
	return i.Direction == DirectionDown
}

// InsightBatch is one session's insights in rank order
type InsightBatch struct {
	Date     time.Time `json:"date"`
	Insights []Insight `json:"insights"`
}

// Count returns the number of insights in the batch
func (b *InsightBatch) Count() int {
	return len(b.Insights)
}

// Symbols returns the insight symbols in rank order
func (b *InsightBatch) Symbols() []string {
	symbols := make([]string, 0, len(b.Insights))
	for _, in := range b.Insights {
		symbols = append(symbols, in.Symbol)
	}
	return symbols
}
