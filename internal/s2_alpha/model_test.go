package s2_alpha

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/pumpwatch/internal/contracts"
)

func bar(symbol string, open, close float64) contracts.SessionBar {
	return contracts.SessionBar{Symbol: symbol, Open: open, Close: close, HasData: true}
}

func TestNewModel_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero lookback", func(c *Config) { c.Lookback = 0 }},
		{"negative resolution", func(c *Config) { c.Resolution = -time.Hour }},
		{"zero number of stocks", func(c *Config) { c.NumberOfStocks = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)

			model, err := NewModel(config)
			assert.Error(t, err)
			assert.Nil(t, model)
		})
	}

	model, err := NewModel(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, model.PredictionInterval())
}

func TestModel_PredictionInterval(t *testing.T) {
	config := Config{Lookback: 3, Resolution: 24 * time.Hour, NumberOfStocks: 10}
	model, err := NewModel(config)
	require.NoError(t, err)

	assert.Equal(t, 72*time.Hour, model.PredictionInterval())
}

func TestModel_Rank_TopK(t *testing.T) {
	config := DefaultConfig()
	config.NumberOfStocks = 2
	model, err := NewModel(config)
	require.NoError(t, err)

	// A: +10%, B: +25%, C: +5% → top 2 are B then A
	insights := model.Rank([]contracts.SessionBar{
		bar("A", 1.00, 1.10),
		bar("B", 2.00, 2.50),
		bar("C", 4.00, 4.20),
	})

	require.Len(t, insights, 2)
	assert.Equal(t, "B", insights[0].Symbol)
	assert.Equal(t, "A", insights[1].Symbol)
	assert.InDelta(t, 0.25, insights[0].Magnitude, 1e-12)
	assert.InDelta(t, 0.10, insights[1].Magnitude, 1e-12)
}

func TestModel_Rank_AllDown(t *testing.T) {
	model, err := NewModel(DefaultConfig())
	require.NoError(t, err)

	insights := model.Rank([]contracts.SessionBar{
		bar("A", 1.00, 1.50),
		bar("B", 2.00, 1.00), // losers still rank, just lower
	})

	require.Len(t, insights, 2)
	for _, in := range insights {
		assert.Equal(t, contracts.DirectionDown, in.Direction)
		assert.True(t, in.IsDown())
		assert.Nil(t, in.Confidence)
		assert.Equal(t, 24*time.Hour, in.Period)
		assert.False(t, in.GeneratedAt.IsZero())
	}
	assert.Equal(t, "A", insights[0].Symbol)
	assert.InDelta(t, -0.5, insights[1].Magnitude, 1e-12)
}

func TestModel_Rank_SkipsUnusableBars(t *testing.T) {
	model, err := NewModel(DefaultConfig())
	require.NoError(t, err)

	noData := bar("NODATA", 1.00, 2.00)
	noData.HasData = false

	insights := model.Rank([]contracts.SessionBar{
		noData,
		bar("ZEROOPEN", 0, 1.00),
		bar("OK", 1.00, 1.20),
	})

	require.Len(t, insights, 1)
	assert.Equal(t, "OK", insights[0].Symbol)
}

func TestModel_Rank_TieBreaksBySymbol(t *testing.T) {
	config := DefaultConfig()
	config.NumberOfStocks = 3
	model, err := NewModel(config)
	require.NoError(t, err)

	// Returns differ only past the 6th decimal: same ranking key,
	// symbol ascending decides the order.
	insights := model.Rank([]contracts.SessionBar{
		bar("ZZZZ", 1.0, 1.1000001),
		bar("AAAA", 1.0, 1.1000004),
		bar("MMMM", 1.0, 1.1000002),
	})

	require.Len(t, insights, 3)
	assert.Equal(t, "AAAA", insights[0].Symbol)
	assert.Equal(t, "MMMM", insights[1].Symbol)
	assert.Equal(t, "ZZZZ", insights[2].Symbol)
}

func TestModel_Rank_MagnitudeUnrounded(t *testing.T) {
	model, err := NewModel(DefaultConfig())
	require.NoError(t, err)

	open, close := 3.0, 3.1000001
	insights := model.Rank([]contracts.SessionBar{bar("RAW", open, close)})

	require.Len(t, insights, 1)
	// Exact session return, not the rounded ranking key
	assert.Equal(t, close/open-1, insights[0].Magnitude)
}

func TestModel_Rank_Deterministic(t *testing.T) {
	config := DefaultConfig()
	config.NumberOfStocks = 5
	model, err := NewModel(config)
	require.NoError(t, err)

	bars := make([]contracts.SessionBar, 0, 20)
	for i := 0; i < 20; i++ {
		bars = append(bars, bar(fmt.Sprintf("S%02d", i), 1.0, 1.0+float64(i%7)*0.01))
	}

	first := model.Rank(bars)
	second := model.Rank(bars)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Symbol, second[i].Symbol)
		assert.Equal(t, first[i].Magnitude, second[i].Magnitude)
	}
}

func TestModel_Rank_EmptyInput(t *testing.T) {
	model, err := NewModel(DefaultConfig())
	require.NoError(t, err)

	assert.Empty(t, model.Rank(nil))
	assert.Empty(t, model.Rank([]contracts.SessionBar{}))
}
