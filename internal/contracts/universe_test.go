package contracts

import (
	"testing"
	"time"
)

func TestUniverse_Contains(t *testing.T) {
	universe := &Universe{
		Month:   3,
		Date:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Symbols: []string{"ABCD", "EFGH", "IJKL"},
	}

	if !universe.Contains("EFGH") {
		t.Error("Expected universe to contain EFGH")
	}

	if universe.Contains("ZZZZ") {
		t.Error("Expected universe not to contain ZZZZ")
	}
}

func TestUniverse_IsExcluded(t *testing.T) {
	universe := &Universe{
		Symbols: []string{"ABCD"},
		Excluded: map[string]string{
			"EFGH": "price",
			"IJKL": "volume",
		},
	}

	excluded, reason := universe.IsExcluded("EFGH")
	if !excluded {
		t.Error("Expected EFGH to be excluded")
	}
	if reason != "price" {
		t.Errorf("Got reason %s, want price", reason)
	}

	excluded, _ = universe.IsExcluded("ABCD")
	if excluded {
		t.Error("Expected ABCD not to be excluded")
	}
}

func TestUniverse_Count(t *testing.T) {
	universe := &Universe{
		Symbols: []string{"ABCD", "EFGH", "IJKL"},
	}

	if count := universe.Count(); count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}

func TestSessionBar_Return(t *testing.T) {
	tests := []struct {
		name string
		bar  SessionBar
		want float64
		ok   bool
	}{
		{
			name: "pumped stock",
			bar:  SessionBar{Symbol: "ABCD", Open: 1.0, Close: 1.10, HasData: true},
			want: 0.10,
			ok:   true,
		},
		{
			name: "dumped stock",
			bar:  SessionBar{Symbol: "EFGH", Open: 2.0, Close: 1.80, HasData: true},
			want: -0.10,
			ok:   true,
		},
		{
			name: "zero open",
			bar:  SessionBar{Symbol: "IJKL", Open: 0, Close: 1.0, HasData: true},
			ok:   false,
		},
		{
			name: "no data",
			bar:  SessionBar{Symbol: "MNOP", Open: 1.0, Close: 1.0, HasData: false},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.bar.Return()
			if ok != tt.ok {
				t.Fatalf("Return() ok = %v, want %v", ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			epsilon := 1e-12
			if diff := got - tt.want; diff > epsilon || diff < -epsilon {
				t.Errorf("Return() = %v, want %v", got, tt.want)
			}
		})
	}
}
