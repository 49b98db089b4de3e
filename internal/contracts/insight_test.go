package contracts

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDirection_String(t *testing.T) {
	tests := []struct {
		direction Direction
		want      string
	}{
		{DirectionDown, "down"},
		{DirectionFlat, "flat"},
		{DirectionUp, "up"},
	}

	for _, tt := range tests {
		if got := tt.direction.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %s, want %s", tt.direction, got, tt.want)
		}
	}
}

func TestInsight_IsDown(t *testing.T) {
	down := &Insight{Symbol: "ABCD", Direction: DirectionDown}
	if !down.IsDown() {
		t.Error("Expected down insight to report IsDown")
	}

	flat := &Insight{Symbol: "EFGH", Direction: DirectionFlat}
	if flat.IsDown() {
		t.Error("Expected flat insight not to report IsDown")
	}
}

func TestInsightBatch_Symbols(t *testing.T) {
	batch := &InsightBatch{
		Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Insights: []Insight{
			{Symbol: "ABCD", Direction: DirectionDown, Magnitude: 0.42},
			{Symbol: "EFGH", Direction: DirectionDown, Magnitude: 0.17},
		},
	}

	if batch.Count() != 2 {
		t.Errorf("Count() = %d, want 2", batch.Count())
	}

	symbols := batch.Symbols()
	if len(symbols) != 2 || symbols[0] != "ABCD" || symbols[1] != "EFGH" {
		t.Errorf("Symbols() = %v, want rank order [ABCD EFGH]", symbols)
	}
}

func TestInsight_JSONRoundTrip(t *testing.T) {
	original := Insight{
		Symbol:      "ABCD",
		Direction:   DirectionDown,
		Magnitude:   0.123456789,
		Period:      24 * time.Hour,
		GeneratedAt: time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Insight
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.Symbol != original.Symbol {
		t.Errorf("Symbol = %s, want %s", decoded.Symbol, original.Symbol)
	}
	if decoded.Direction != original.Direction {
		t.Errorf("Direction = %d, want %d", decoded.Direction, original.Direction)
	}
	if decoded.Magnitude != original.Magnitude {
		t.Errorf("Magnitude = %v, want %v", decoded.Magnitude, original.Magnitude)
	}
	if decoded.Confidence != nil {
		t.Error("Expected confidence to stay unset")
	}
}
